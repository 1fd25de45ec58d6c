package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	goslack "github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"golang.org/x/sync/errgroup"

	"github.com/buyops-dev/creative-relay/pkg/domain/interfaces"
	"github.com/buyops-dev/creative-relay/pkg/domain/model"
	"github.com/buyops-dev/creative-relay/pkg/domain/model/config"
	"github.com/buyops-dev/creative-relay/pkg/domain/types"
	slacksvc "github.com/buyops-dev/creative-relay/pkg/service/slack"
	"github.com/buyops-dev/creative-relay/pkg/utils/errutil"
	"github.com/buyops-dev/creative-relay/pkg/utils/logging"
)

// Slack interaction action IDs for the decision buttons. The action name
// and record ID travel in the button value in "<action>_<id>" form; the
// action IDs only keep the two buttons distinct within the block.
const (
	SlackActionIDApprove = "creative_approve"
	SlackActionIDReject  = "creative_reject"
	slackDecisionBlockID = "creative_decision_buttons"
)

// downloadConcurrency bounds parallel image downloads per submission
const downloadConcurrency = 4

// SubmissionUseCase handles inbound buyer submissions
type SubmissionUseCase struct {
	repo            interfaces.Repository
	slackService    slacksvc.Service
	sourceChannelID string
	reviewChannelID string
	messages        *config.Messages
}

func NewSubmissionUseCase(repo interfaces.Repository, slackService slacksvc.Service, sourceChannelID, reviewChannelID string, messages *config.Messages) *SubmissionUseCase {
	return &SubmissionUseCase{
		repo:            repo,
		slackService:    slackService,
		sourceChannelID: sourceChannelID,
		reviewChannelID: reviewChannelID,
		messages:        messages,
	}
}

// HandleMessageEvent processes one message event from the Events API.
// slackevents.MessageEvent does not carry the files array, so the caller
// decodes it from the raw callback body and passes it in. Events that do
// not qualify as submissions are silently ignored; failures after a record
// exists are reported back to the buyer in the thread and never escape as
// a crash.
func (uc *SubmissionUseCase) HandleMessageEvent(ctx context.Context, ev *slackevents.MessageEvent, files []slackevents.File) error {
	logger := logging.From(ctx)

	if ev.Channel != uc.sourceChannelID {
		return nil
	}
	// Edits, deletions, joins etc. arrive as subtypes; only plain user
	// posts qualify. BotID covers messages from other bots.
	if ev.SubType != "" || ev.BotID != "" || ev.User == "" {
		return nil
	}

	botUserID, err := uc.slackService.BotUserID(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to resolve bot user ID")
	}
	if ev.User == botUserID {
		return nil
	}

	images := imageURLs(files)
	if len(images) == 0 {
		return nil
	}

	description := strings.TrimSpace(ev.Text)
	if description == "" {
		description = uc.messages.PlaceholderDescription
	}

	submitterName := ev.User
	if user, err := uc.slackService.GetUserInfo(ctx, ev.User); err == nil {
		submitterName = user.DisplayName()
	} else {
		// Best-effort: the record falls back to the raw user ID
		errutil.Handle(ctx, err, "failed to resolve submitter name")
	}

	creative := model.NewCreative(ev.User, submitterName, uc.reviewChannelID, images, description, ev.TimeStamp)

	created, err := uc.repo.Creative().Create(ctx, creative)
	if err != nil {
		uc.replyToSubmitter(ctx, ev.TimeStamp, uc.messages.SubmissionStoreFailure)
		return goerr.Wrap(err, "failed to store creative", goerr.V(CreativeIDKey, creative.ID))
	}

	if err := uc.deliverForReview(ctx, created); err != nil {
		uc.replyToSubmitter(ctx, ev.TimeStamp, uc.messages.SubmissionDeliveryFailure)
		return goerr.Wrap(err, "failed to deliver creative for review", goerr.V(CreativeIDKey, created.ID))
	}

	uc.replyToSubmitter(ctx, ev.TimeStamp, uc.messages.SubmissionConfirmation)

	logger.Info("creative submitted",
		"creative_id", created.ID,
		"submitter_id", created.SubmitterID,
		"images", len(created.Images),
	)

	return nil
}

// deliverForReview posts the review message with decision buttons and
// mirrors the images into its thread, preserving submission order.
func (uc *SubmissionUseCase) deliverForReview(ctx context.Context, creative *model.Creative) error {
	blocks := buildReviewMessageBlocks(creative)
	fallbackText := fmt.Sprintf("New creative from %s", creative.SubmitterName)

	ts, err := uc.slackService.PostMessage(ctx, creative.ReviewChannelID, blocks, fallbackText)
	if err != nil {
		return goerr.Wrap(err, "failed to post review message", goerr.V(ChannelIDKey, creative.ReviewChannelID))
	}

	// Download in parallel, upload sequentially to keep the order stable
	data := make([][]byte, len(creative.Images))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(downloadConcurrency)
	for i, url := range creative.Images {
		eg.Go(func() error {
			body, err := uc.slackService.DownloadFile(egCtx, url)
			if err != nil {
				return goerr.Wrap(err, "failed to download image", goerr.V("url", url))
			}
			data[i] = body
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return goerr.Wrap(err, "failed to download creative images", goerr.V(CreativeIDKey, creative.ID))
	}

	for _, body := range data {
		if err := uc.slackService.UploadImage(ctx, creative.ReviewChannelID, ts, uniqueImageFilename(), body); err != nil {
			return goerr.Wrap(err, "failed to mirror image", goerr.V(CreativeIDKey, creative.ID))
		}
	}

	return nil
}

// replyToSubmitter posts a threaded reply on the original submission.
// Failures here are logged but never override the primary outcome.
func (uc *SubmissionUseCase) replyToSubmitter(ctx context.Context, parentTS, text string) {
	if _, err := uc.slackService.PostThreadReply(ctx, uc.sourceChannelID, parentTS, text); err != nil {
		errutil.Handle(ctx, err, "failed to reply to submitter")
	}
}

// imageURLs returns the private download URLs of image attachments in
// message order. Non-image files are skipped.
func imageURLs(files []slackevents.File) []string {
	var urls []string
	for _, f := range files {
		if !strings.HasPrefix(f.Mimetype, "image/") {
			continue
		}
		url := f.URLPrivateDownload
		if url == "" {
			url = f.URLPrivate
		}
		if url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}

// uniqueImageFilename generates a collision-free filename for a mirrored image
func uniqueImageFilename() string {
	return "creative-" + uuid.NewString() + ".png"
}

// buildReviewMessageBlocks constructs the Block Kit review message:
// submitter mention, description, and the approve/reject buttons.
func buildReviewMessageBlocks(creative *model.Creative) []goslack.Block {
	text := fmt.Sprintf("*New creative from <@%s>*\n%s", creative.SubmitterID, creative.Description)

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}

	approve := goslack.NewButtonBlockElement(
		SlackActionIDApprove,
		types.NewDecision(types.DecisionApprove, creative.ID).Value(),
		goslack.NewTextBlockObject(goslack.PlainTextType, "Approve", true, false),
	)
	approve.Style = goslack.StylePrimary

	reject := goslack.NewButtonBlockElement(
		SlackActionIDReject,
		types.NewDecision(types.DecisionReject, creative.ID).Value(),
		goslack.NewTextBlockObject(goslack.PlainTextType, "Reject", true, false),
	)
	reject.Style = goslack.StyleDanger

	blocks = append(blocks, goslack.NewActionBlock(slackDecisionBlockID, approve, reject))

	return blocks
}
