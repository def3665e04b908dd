package service

import (
	"context"

	"github.com/modeboutique/storefront/internal/core/domain"
	"github.com/modeboutique/storefront/internal/core/ports"
	"github.com/modeboutique/storefront/internal/pkg/metrics"
)

// emitNotification records a notification about a, mirrors it to the backend
// when one is configured, and persists the list.
func (s *Store) emitNotification(ctx context.Context, a domain.Article, message string) {
	n := domain.Notification{
		ID:          s.newID(),
		ArticleID:   a.ID,
		ArticleName: a.Name,
		Message:     message,
		CreatedAt:   s.now(),
	}

	if s.notifRepo != nil {
		// Mark before inserting: the echo may arrive before Create returns.
		if s.opts.Echo == EchoSuppress && s.echo != nil {
			if err := s.echo.Mark(ctx, n.ID); err != nil {
				s.log.Warn().Err(err).Str("notification_id", n.ID).Msg("failed to mark echo")
			}
		}
		if err := s.notifRepo.Create(ctx, &n); err != nil {
			s.gatewayFailed("create_notification", err)
		}
	}

	s.mu.Lock()
	s.notifications = prepend(s.notifications, n)
	s.cache.Save(ctx, ports.KeyNotifications, s.notifications)
	s.mu.Unlock()

	metrics.NotificationsTotal.WithLabelValues("local").Inc()
	s.log.Info().Str("notification_id", n.ID).Str("article_id", a.ID).Msg("notification emitted")
}

// ApplyRemoteNotification handles a notification delivered by the realtime
// feed: it is prepended, persisted and raised as an alert. Duplicates are
// tolerated unless the echo policy suppresses this instance's own inserts.
func (s *Store) ApplyRemoteNotification(ctx context.Context, n domain.Notification) error {
	if s.opts.Echo == EchoSuppress && s.echo != nil {
		seen, err := s.echo.Seen(ctx, n.ID)
		if err != nil {
			s.log.Warn().Err(err).Str("notification_id", n.ID).Msg("echo check failed, delivering anyway")
		} else if seen {
			metrics.RealtimeEchoesSuppressedTotal.Inc()
			s.log.Debug().Str("notification_id", n.ID).Msg("own notification echo skipped")
			return nil
		}
	}

	s.mu.Lock()
	s.notifications = prepend(s.notifications, n)
	s.cache.Save(ctx, ports.KeyNotifications, s.notifications)
	s.alerts = append(s.alerts, domain.Alert{Message: n.Message, CreatedAt: s.now()})
	if over := len(s.alerts) - s.opts.MaxAlerts; over > 0 {
		s.alerts = append([]domain.Alert(nil), s.alerts[over:]...)
	}
	s.mu.Unlock()

	metrics.NotificationsTotal.WithLabelValues("realtime").Inc()
	s.log.Info().Str("notification_id", n.ID).Str("article_id", n.ArticleID).Msg("realtime notification applied")
	return nil
}

// Notifications returns the notification list, newest first.
func (s *Store) Notifications() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// UnreadCount is the number of notifications not yet read.
func (s *Store) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unreadLocked()
}

func (s *Store) unreadLocked() int {
	n := 0
	for i := range s.notifications {
		if !s.notifications[i].Read {
			n++
		}
	}
	return n
}

// MarkNotificationRead sets read on the notification with id. Unknown ids
// are ignored. The backend mirror is best-effort.
func (s *Store) MarkNotificationRead(ctx context.Context, id string) error {
	s.mu.Lock()
	found := false
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			found = true
		}
	}
	if found {
		s.cache.Save(ctx, ports.KeyNotifications, s.notifications)
	}
	s.mu.Unlock()

	if !found || s.notifRepo == nil {
		return nil
	}
	if err := s.notifRepo.MarkRead(ctx, id); err != nil {
		s.gatewayFailed("mark_notification_read", err)
	}
	return nil
}

// MarkAllNotificationsRead sets read on every notification.
func (s *Store) MarkAllNotificationsRead(ctx context.Context) error {
	s.mu.Lock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
	s.cache.Save(ctx, ports.KeyNotifications, s.notifications)
	s.mu.Unlock()

	if s.notifRepo == nil {
		return nil
	}
	if err := s.notifRepo.MarkAllRead(ctx); err != nil {
		s.gatewayFailed("mark_all_notifications_read", err)
	}
	return nil
}

// DrainAlerts returns the pending alerts and clears them.
func (s *Store) DrainAlerts() []domain.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.alerts
	s.alerts = nil
	if out == nil {
		return []domain.Alert{}
	}
	return out
}
