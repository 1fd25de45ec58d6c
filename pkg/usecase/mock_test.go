package usecase_test

import (
	"context"
	"sync"

	"github.com/slack-go/slack"

	"github.com/buyops-dev/creative-relay/pkg/domain/interfaces"
	"github.com/buyops-dev/creative-relay/pkg/domain/model"
	slacksvc "github.com/buyops-dev/creative-relay/pkg/service/slack"
)

type postedMessage struct {
	channelID    string
	blocks       []slack.Block
	fallbackText string
}

type threadReply struct {
	channelID string
	parentTS  string
	text      string
}

type postedText struct {
	channelID string
	text      string
}

type ephemeralNotice struct {
	channelID string
	userID    string
	text      string
}

type uploadedImage struct {
	channelID string
	threadTS  string
	filename  string
	data      []byte
}

// mockSlackService records every call and replies with canned data.
// Error fields, when set, make the corresponding method fail.
type mockSlackService struct {
	mu sync.Mutex

	botUserID string
	users     map[string]*slacksvc.User

	userInfoErr    error
	postMessageErr error
	threadReplyErr error
	postTextErr    error
	ephemeralErr   error
	downloadErr    error
	uploadErr      error

	messages   []postedMessage
	replies    []threadReply
	texts      []postedText
	ephemerals []ephemeralNotice
	downloads  []string
	uploads    []uploadedImage
}

var _ slacksvc.Service = &mockSlackService{}

func newMockSlackService() *mockSlackService {
	return &mockSlackService{
		botUserID: "UBOT",
		users:     map[string]*slacksvc.User{},
	}
}

func (m *mockSlackService) BotUserID(ctx context.Context) (string, error) {
	return m.botUserID, nil
}

func (m *mockSlackService) GetUserInfo(ctx context.Context, userID string) (*slacksvc.User, error) {
	if m.userInfoErr != nil {
		return nil, m.userInfoErr
	}
	if user, ok := m.users[userID]; ok {
		return user, nil
	}
	return &slacksvc.User{ID: userID}, nil
}

func (m *mockSlackService) PostMessage(ctx context.Context, channelID string, blocks []slack.Block, fallbackText string) (string, error) {
	if m.postMessageErr != nil {
		return "", m.postMessageErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages, postedMessage{channelID: channelID, blocks: blocks, fallbackText: fallbackText})
	return "1704067300.000001", nil
}

func (m *mockSlackService) PostText(ctx context.Context, channelID, text string) error {
	if m.postTextErr != nil {
		return m.postTextErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.texts = append(m.texts, postedText{channelID: channelID, text: text})
	return nil
}

func (m *mockSlackService) PostThreadReply(ctx context.Context, channelID, parentTS, text string) (string, error) {
	if m.threadReplyErr != nil {
		return "", m.threadReplyErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, threadReply{channelID: channelID, parentTS: parentTS, text: text})
	return "1704067300.000002", nil
}

func (m *mockSlackService) PostEphemeral(ctx context.Context, channelID, userID, text string) error {
	if m.ephemeralErr != nil {
		return m.ephemeralErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ephemerals = append(m.ephemerals, ephemeralNotice{channelID: channelID, userID: userID, text: text})
	return nil
}

func (m *mockSlackService) DownloadFile(ctx context.Context, downloadURL string) ([]byte, error) {
	if m.downloadErr != nil {
		return nil, m.downloadErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.downloads = append(m.downloads, downloadURL)
	return []byte("img:" + downloadURL), nil
}

func (m *mockSlackService) UploadImage(ctx context.Context, channelID, threadTS, filename string, data []byte) error {
	if m.uploadErr != nil {
		return m.uploadErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.uploads = append(m.uploads, uploadedImage{channelID: channelID, threadTS: threadTS, filename: filename, data: data})
	return nil
}

// failingRepository wraps an inner repository and injects a Create error
type failingRepository struct {
	inner     interfaces.Repository
	createErr error
}

var _ interfaces.Repository = &failingRepository{}

func (r *failingRepository) Creative() interfaces.CreativeRepository {
	return &failingCreativeRepository{CreativeRepository: r.inner.Creative(), createErr: r.createErr}
}

func (r *failingRepository) Close() error {
	return r.inner.Close()
}

type failingCreativeRepository struct {
	interfaces.CreativeRepository
	createErr error
}

func (r *failingCreativeRepository) Create(ctx context.Context, c *model.Creative) (*model.Creative, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	return r.CreativeRepository.Create(ctx, c)
}
