package usecase

import (
	"github.com/buyops-dev/creative-relay/pkg/domain/interfaces"
	"github.com/buyops-dev/creative-relay/pkg/domain/model/config"
	slacksvc "github.com/buyops-dev/creative-relay/pkg/service/slack"
)

type UseCases struct {
	repo     interfaces.Repository
	messages *config.Messages

	Submission *SubmissionUseCase
	Decision   *DecisionUseCase
}

type Option func(*UseCases)

func WithMessages(messages *config.Messages) Option {
	return func(uc *UseCases) {
		uc.messages = messages
	}
}

func New(repo interfaces.Repository, slackService slacksvc.Service, sourceChannelID, reviewChannelID string, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:     repo,
		messages: config.DefaultMessages(),
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Submission = NewSubmissionUseCase(repo, slackService, sourceChannelID, reviewChannelID, uc.messages)
	uc.Decision = NewDecisionUseCase(repo, slackService, sourceChannelID, uc.messages)

	return uc
}
