package services

import (
	"errors"
	"fmt"
	"time"

	"newsd/internal/models"
	"newsd/internal/providers"
	"newsd/internal/store"
)

const defaultSlug = "item"

type CardServiceInterface interface {
	List() ([]*models.Card, error)
	Create(title, content, slug string) (*models.Card, error)
	Update(id string, upd *models.CardUpdate) (*models.Card, error)
	Delete(id string) error
	ToggleVisibility(id string) (*models.Card, error)
	Count() int
}

type CardService struct {
	docs   store.DocumentStore
	logger providers.Logger
	now    func() time.Time
}

func NewCardService(docs *store.CardStore, logger providers.Logger) CardServiceInterface {
	return &CardService{
		docs:   docs,
		logger: logger,
		now:    time.Now,
	}
}

func (cs *CardService) List() ([]*models.Card, error) {
	var col models.CardCollection
	if err := cs.docs.Read(&col); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return []*models.Card{}, nil
		}
		return nil, err
	}
	if col.Cards == nil {
		return []*models.Card{}, nil
	}
	return col.Cards, nil
}

func (cs *CardService) Create(title, content, slug string) (*models.Card, error) {
	if title == "" || content == "" {
		return nil, &models.ValidationError{Msg: "title and content are required"}
	}
	if slug == "" {
		slug = defaultSlug
	}

	now := cs.now()
	card := &models.Card{
		ID:          fmt.Sprintf("news-%s-%s", now.Format("20060102"), slug),
		Title:       title,
		Content:     content,
		Date:        now.Format("2006-01-02"),
		DateDisplay: fmt.Sprintf("%d年%d月%d日", now.Year(), int(now.Month()), now.Day()),
		Visible:     true,
		CreatedAt:   now.Format("2006-01-02T15:04:05"),
	}

	var col models.CardCollection
	err := cs.docs.Update(&col, func() error {
		card.ID = uniqueID(card.ID, col.Cards)
		col.Cards = append([]*models.Card{card}, col.Cards...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	cs.logger.Infof(providers.TypeApp, "Created card %s", card.ID)
	return card, nil
}

// uniqueID probes suffixes -2, -3, ... until the id is free.
func uniqueID(base string, cards []*models.Card) string {
	existing := make(map[string]struct{}, len(cards))
	for _, c := range cards {
		existing[c.ID] = struct{}{}
	}
	if _, taken := existing[base]; !taken {
		return base
	}
	for i := 2; ; i++ {
		id := fmt.Sprintf("%s-%d", base, i)
		if _, taken := existing[id]; !taken {
			return id
		}
	}
}

func (cs *CardService) Update(id string, upd *models.CardUpdate) (*models.Card, error) {
	var found *models.Card
	var col models.CardCollection
	err := cs.docs.Update(&col, func() error {
		for _, c := range col.Cards {
			if c.ID == id {
				if upd.Title != nil {
					c.Title = *upd.Title
				}
				if upd.Content != nil {
					c.Content = *upd.Content
				}
				found = c
				return nil
			}
		}
		return models.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (cs *CardService) Delete(id string) error {
	var col models.CardCollection
	err := cs.docs.Update(&col, func() error {
		kept := col.Cards[:0]
		for _, c := range col.Cards {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		if len(kept) == len(col.Cards) {
			return models.ErrNotFound
		}
		col.Cards = kept
		return nil
	})
	if err != nil {
		return err
	}

	cs.logger.Infof(providers.TypeApp, "Deleted card %s", id)
	return nil
}

func (cs *CardService) ToggleVisibility(id string) (*models.Card, error) {
	var found *models.Card
	var col models.CardCollection
	err := cs.docs.Update(&col, func() error {
		for _, c := range col.Cards {
			if c.ID == id {
				c.Visible = !c.Visible
				found = c
				return nil
			}
		}
		return models.ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (cs *CardService) Count() int {
	cards, err := cs.List()
	if err != nil {
		return 0
	}
	return len(cards)
}
