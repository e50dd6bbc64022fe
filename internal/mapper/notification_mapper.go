package mapper

import (
	"encoding/json"

	"caseflow-be/internal/entity"
	"caseflow-be/internal/model"

	"gorm.io/datatypes"
)

type NotificationMapper struct{}

func NewNotificationMapper() *NotificationMapper {
	return &NotificationMapper{}
}

func (m *NotificationMapper) ToEntity(n *model.Notification) *entity.Notification {
	if n == nil {
		return nil
	}

	var data map[string]interface{}
	if len(n.Data) > 0 {
		_ = json.Unmarshal(n.Data, &data)
	}

	return &entity.Notification{
		Id:        n.Id,
		UserId:    n.UserId,
		Type:      n.Type,
		Title:     n.Title,
		Body:      n.Body,
		Data:      data,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func (m *NotificationMapper) ToModel(n *entity.Notification) *model.Notification {
	if n == nil {
		return nil
	}

	var data datatypes.JSON
	if n.Data != nil {
		if raw, err := json.Marshal(n.Data); err == nil {
			data = raw
		}
	}

	return &model.Notification{
		Id:        n.Id,
		UserId:    n.UserId,
		Type:      n.Type,
		Title:     n.Title,
		Body:      n.Body,
		Data:      data,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func (m *NotificationMapper) ToEntities(notifications []*model.Notification) []*entity.Notification {
	entities := make([]*entity.Notification, len(notifications))
	for i, n := range notifications {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
