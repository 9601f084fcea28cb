package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/navalhaapp/barber-booking/internal/logger"
	"github.com/navalhaapp/barber-booking/internal/models"
)

const (
	AudienceAdmins = "admins"
	AudienceUser   = "user"
)

type Event struct {
	Audience string
	UserID   uint // usado quando Audience = user
	Message  string
	Payload  any
}

// Dispatcher entrega notificações de forma assíncrona: persiste uma linha
// por destinatário e publica no canal redis do usuário. Falhas nunca se
// propagam para a operação que disparou o evento.
type Dispatcher struct {
	db    *gorm.DB
	rdb   *redis.Client
	queue chan Event
	log   *zap.Logger
}

func NewDispatcher(db *gorm.DB, rdb *redis.Client) *Dispatcher {
	d := &Dispatcher{
		db:    db,
		rdb:   rdb,
		queue: make(chan Event, 100),
		log:   logger.L(),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.deliver(ev); err != nil {
			d.log.Error("notification delivery failed",
				zap.String("audience", ev.Audience),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) deliver(ev Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	recipients, err := d.recipients(ctx, ev)
	if err != nil {
		return err
	}

	for _, id := range recipients {
		n := models.Notification{
			RecipientID: id,
			Message:     ev.Message,
		}
		if err := d.db.WithContext(ctx).Create(&n).Error; err != nil {
			return err
		}

		d.publish(ctx, &n, ev.Payload)
	}

	return nil
}

func (d *Dispatcher) recipients(ctx context.Context, ev Event) ([]uint, error) {
	if ev.Audience == AudienceUser {
		return []uint{ev.UserID}, nil
	}

	var ids []uint
	if err := d.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Pluck("id", &ids).Error; err != nil {
		return nil, err
	}

	return ids, nil
}

// publish manda o evento para o canal do destinatário; erro de redis é
// apenas logado (a linha persistida é a fonte de verdade).
func (d *Dispatcher) publish(ctx context.Context, n *models.Notification, payload any) {
	if d.rdb == nil {
		return
	}

	body, err := json.Marshal(map[string]any{
		"id":           n.ID,
		"recipient_id": n.RecipientID,
		"message":      n.Message,
		"payload":      payload,
		"created_at":   n.CreatedAt,
	})
	if err != nil {
		return
	}

	channel := fmt.Sprintf("notifications:%d", n.RecipientID)
	if err := d.rdb.Publish(ctx, channel, body).Err(); err != nil {
		d.log.Warn("redis publish failed",
			zap.String("channel", channel),
			zap.Error(err),
		)
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia: descartamos a notificação (nunca quebrar a API)
		d.log.Warn("notification queue full, dropping event",
			zap.String("audience", ev.Audience),
		)
	}
}

func (d *Dispatcher) NotifyAdmins(message string, payload any) {
	d.Dispatch(Event{Audience: AudienceAdmins, Message: message, Payload: payload})
}

func (d *Dispatcher) NotifyUser(userID uint, message string, payload any) {
	d.Dispatch(Event{Audience: AudienceUser, UserID: userID, Message: message, Payload: payload})
}
