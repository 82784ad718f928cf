package services

import (
	"context"
	"fmt"

	"stylistapi/models"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type NotificationProvider interface {
	Notify(ctx context.Context, userID uint, title, body string, data map[string]string) error
}

// FirebaseNotifier pushes to every active token of a user. A nil App turns it
// into a no-op so local setups work without credentials.
type FirebaseNotifier struct {
	App    *firebase.App
	DB     *gorm.DB
	Logger zerolog.Logger
}

func (n *FirebaseNotifier) Notify(ctx context.Context, userID uint, title, body string, data map[string]string) error {
	if n.App == nil {
		n.Logger.Debug().Uint("user_id", userID).Msg("[Push] firebase is not configured, skipping")
		return nil
	}

	var user models.UserAccount
	if err := n.DB.Select("id", "receive_notifications").First(&user, userID).Error; err != nil {
		return fmt.Errorf("load user %d: %w", userID, err)
	}
	if !user.ReceiveNotifications {
		return nil
	}

	var tokens []models.UserPushToken
	if err := n.DB.Where("user_account_id = ? AND active = ?", userID, true).Find(&tokens).Error; err != nil {
		return fmt.Errorf("load push tokens for %d: %w", userID, err)
	}
	if len(tokens) == 0 {
		return nil
	}

	client, err := n.App.Messaging(ctx)
	if err != nil {
		return fmt.Errorf("firebase messaging client: %w", err)
	}

	messages := make([]*messaging.Message, 0, len(tokens))
	for _, token := range tokens {
		messages = append(messages, &messaging.Message{
			Token:        token.Token,
			Notification: &messaging.Notification{Title: title, Body: body},
			Data:         data,
			Android:      &messaging.AndroidConfig{Priority: "high"},
			APNS: &messaging.APNSConfig{
				Payload: &messaging.APNSPayload{Aps: &messaging.Aps{Sound: "default"}},
			},
		})
	}

	batch, err := client.SendEach(ctx, messages)
	if err != nil {
		sentry.WithScope(func(scope *sentry.Scope) {
			scope.SetContext("push", stringMapToInterfaceMap(data))
			sentry.CaptureException(err)
		})
		return fmt.Errorf("send push to user %d: %w", userID, err)
	}

	var stale []uint
	for i, resp := range batch.Responses {
		if resp.Success {
			continue
		}
		if messaging.IsUnregistered(resp.Error) {
			stale = append(stale, tokens[i].ID)
			continue
		}
		n.Logger.Warn().Err(resp.Error).Uint("user_id", userID).Msg("[Push] delivery failed")
	}
	if len(stale) > 0 {
		if err := n.DB.Model(&models.UserPushToken{}).Where("id IN ?", stale).Update("active", false).Error; err != nil {
			return fmt.Errorf("deactivate stale tokens: %w", err)
		}
	}
	n.Logger.Info().Uint("user_id", userID).Int("sent", batch.SuccessCount).Int("stale", len(stale)).Msg("[Push] delivered")
	return nil
}
