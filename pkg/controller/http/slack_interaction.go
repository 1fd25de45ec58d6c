package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/buyops-dev/creative-relay/pkg/usecase"
	"github.com/buyops-dev/creative-relay/pkg/utils/errutil"
	"github.com/buyops-dev/creative-relay/pkg/utils/logging"
)

// SlackInteractionHandler handles Slack interactive component payloads (button clicks)
type SlackInteractionHandler struct {
	decisionUC *usecase.DecisionUseCase
}

// NewSlackInteractionHandler creates a new Slack interaction handler
func NewSlackInteractionHandler(decisionUC *usecase.DecisionUseCase) *SlackInteractionHandler {
	return &SlackInteractionHandler{
		decisionUC: decisionUC,
	}
}

// ServeHTTP handles Slack interaction webhook requests
func (h *SlackInteractionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Slack sends interaction payloads as application/x-www-form-urlencoded
	// with a "payload" field containing JSON
	payload := r.FormValue("payload")
	if payload == "" {
		errutil.HandleHTTP(ctx, w, goerr.New("missing payload field in interaction request"), http.StatusBadRequest)
		return
	}

	var callback slack.InteractionCallback
	if err := json.Unmarshal([]byte(payload), &callback); err != nil {
		errutil.HandleHTTP(ctx, w, goerr.Wrap(err, "failed to parse interaction payload"), http.StatusBadRequest)
		return
	}

	// Only handle block_actions (button clicks)
	if callback.Type != slack.InteractionTypeBlockActions {
		w.WriteHeader(http.StatusOK)
		return
	}

	for _, action := range callback.ActionCallback.BlockActions {
		switch action.ActionID {
		case usecase.SlackActionIDApprove, usecase.SlackActionIDReject:
			if err := h.decisionUC.HandleDecision(ctx, action.Value, callback.User.ID, callback.Channel.ID); err != nil {
				logging.From(ctx).Error("failed to handle decision",
					"error", err,
					"action_id", action.ActionID,
					"value", action.Value,
					"user_id", callback.User.ID,
				)
			}

		default:
			// Buttons that are not ours
			continue
		}
	}

	w.WriteHeader(http.StatusOK)
}
