package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/m-mizutani/goerr/v2"

	"github.com/buyops-dev/creative-relay/pkg/domain/interfaces"
	"github.com/buyops-dev/creative-relay/pkg/domain/model/config"
	"github.com/buyops-dev/creative-relay/pkg/domain/types"
	slacksvc "github.com/buyops-dev/creative-relay/pkg/service/slack"
	"github.com/buyops-dev/creative-relay/pkg/utils/errutil"
	"github.com/buyops-dev/creative-relay/pkg/utils/logging"
)

// DecisionUseCase handles reviewer decisions on submitted creatives
type DecisionUseCase struct {
	repo            interfaces.Repository
	slackService    slacksvc.Service
	sourceChannelID string
	messages        *config.Messages
}

func NewDecisionUseCase(repo interfaces.Repository, slackService slacksvc.Service, sourceChannelID string, messages *config.Messages) *DecisionUseCase {
	return &DecisionUseCase{
		repo:            repo,
		slackService:    slackService,
		sourceChannelID: sourceChannelID,
		messages:        messages,
	}
}

// HandleDecision processes one decision button activation. rawValue is the
// button value in "<action>_<id>" wire format, reviewerID the activating
// user, reviewChannelID the channel the button lives in. Every outcome,
// including failures, produces exactly one reviewer-visible response; the
// returned error is for the boundary log only.
func (uc *DecisionUseCase) HandleDecision(ctx context.Context, rawValue, reviewerID, reviewChannelID string) error {
	logger := logging.From(ctx)

	decision := types.ParseDecision(rawValue)
	if !decision.Known() {
		uc.notifyReviewer(ctx, reviewChannelID, reviewerID, "Unknown action. This button is not supported.")
		return goerr.Wrap(ErrUnknownAction, "unrecognized decision value", goerr.V("value", rawValue))
	}

	decided, err := uc.repo.Creative().Decide(ctx, decision.CreativeID, decision.Status())
	switch {
	case err == nil:
		// fallthrough to notification below

	case errors.Is(err, interfaces.ErrNotFound):
		uc.notifyReviewer(ctx, reviewChannelID, reviewerID, "Creative not found.")
		return goerr.Wrap(ErrCreativeNotFound, "creative not found", goerr.V(CreativeIDKey, decision.CreativeID))

	case errors.Is(err, interfaces.ErrAlreadyDecided):
		uc.notifyReviewer(ctx, reviewChannelID, reviewerID, uc.alreadyDecidedNotice(ctx, decision.CreativeID))
		return goerr.Wrap(ErrAlreadyDecided, "decision re-applied", goerr.V(CreativeIDKey, decision.CreativeID))

	default:
		uc.notifyReviewer(ctx, reviewChannelID, reviewerID, "Failed to save the decision. Please try again.")
		return goerr.Wrap(err, "failed to apply decision", goerr.V(CreativeIDKey, decision.CreativeID))
	}

	// Threaded outcome reply to the buyer under the original submission.
	// If the source message is gone this fails and the invocation stops
	// here: the decision is recorded but the reviewer is told delivery
	// failed.
	outcome := fmt.Sprintf("<@%s>, your creative has been %s! %s\n%s",
		decided.SubmitterID, decided.Status, decided.Status.Emoji(), decided.Description)
	if _, err := uc.slackService.PostThreadReply(ctx, uc.sourceChannelID, decided.SourceMessageTS, outcome); err != nil {
		uc.notifyReviewer(ctx, reviewChannelID, reviewerID, "Decision saved, but notifying the buyer failed.")
		return goerr.Wrap(err, "failed to post outcome reply",
			goerr.V(CreativeIDKey, decided.ID),
			goerr.V("source_ts", decided.SourceMessageTS),
		)
	}

	// Public confirmation in the review channel
	confirmation := fmt.Sprintf("Creative from <@%s> %s %s", decided.SubmitterID, decided.Status, decided.Status.Emoji())
	if err := uc.slackService.PostText(ctx, reviewChannelID, confirmation); err != nil {
		errutil.Handle(ctx, err, "failed to post decision confirmation")
	}

	logger.Info("creative decided",
		"creative_id", decided.ID,
		"status", decided.Status,
		"reviewer_id", reviewerID,
	)

	return nil
}

// alreadyDecidedNotice names the final status when it can still be read
func (uc *DecisionUseCase) alreadyDecidedNotice(ctx context.Context, id types.CreativeID) string {
	if creative, err := uc.repo.Creative().Get(ctx, id); err == nil {
		return fmt.Sprintf("This creative was already %s %s", creative.Status, creative.Status.Emoji())
	}
	return "This creative has already been decided."
}

// notifyReviewer sends an ephemeral notice visible only to the reviewer.
// Failures are logged; there is nothing further to report them to.
func (uc *DecisionUseCase) notifyReviewer(ctx context.Context, channelID, userID, text string) {
	if err := uc.slackService.PostEphemeral(ctx, channelID, userID, text); err != nil {
		errutil.Handle(ctx, err, "failed to notify reviewer")
	}
}

