package publish

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"newsd/internal/models"
	"newsd/internal/providers"
	"newsd/internal/render"
	"newsd/internal/services"
	"newsd/internal/structures"
)

// Outcome is the caller-visible result of a publish run: applied with a
// commit message, or a no-op because nothing changed.
type Outcome struct {
	Applied bool   `json:"applied"`
	Message string `json:"message,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

type PublisherInterface interface {
	Publish(ctx context.Context, message string) (*Outcome, error)
}

// Publisher renders the visible card set and drives the generate → stage →
// commit → push pipeline. A failed push leaves the local commit in place;
// local and remote are then divergent, which the caller sees as a push-stage
// error.
type Publisher struct {
	cards    services.CardServiceInterface
	renderer *render.Renderer
	driver   Driver
	conf     *structures.Config
	logger   providers.Logger
	metrics  providers.MetricsProviderInterface
	now      func() time.Time
}

func NewPublisher(cards services.CardServiceInterface, renderer *render.Renderer, driver Driver, conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) PublisherInterface {
	return &Publisher{
		cards:    cards,
		renderer: renderer,
		driver:   driver,
		conf:     conf,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
	}
}

func (p *Publisher) Publish(ctx context.Context, message string) (*Outcome, error) {
	cards, err := p.cards.List()
	if err != nil {
		return nil, p.fail(models.StageGenerate, err)
	}
	html := p.renderer.Render(cards)
	artifact := filepath.Join(p.conf.Publish.RepoDir, p.conf.Publish.Artifact)
	if err := writeFileAtomic(artifact, []byte(html)); err != nil {
		return nil, p.fail(models.StageGenerate, err)
	}

	if err := p.driver.Stage(p.conf.Publish.Artifact, p.conf.Publish.Collection); err != nil {
		return nil, p.fail(models.StageStage, err)
	}

	if message == "" {
		message = "Update news - " + p.now().Format("2006-01-02 15:04")
	}
	committed, err := p.driver.Commit(message)
	if err != nil {
		return nil, p.fail(models.StageCommit, err)
	}
	if !committed {
		p.metrics.IncPublish("no_changes")
		p.logger.Infof(providers.TypeApp, "Publish: no changes")
		return &Outcome{Applied: false, Reason: "no changes"}, nil
	}

	pushCtx, cancel := context.WithTimeout(ctx, p.conf.Publish.PushTimeout)
	defer cancel()
	if err := p.driver.Push(pushCtx); err != nil {
		return nil, p.fail(models.StagePush, err)
	}

	p.metrics.IncPublish("applied")
	p.logger.Infof(providers.TypeApp, "Published: %s", message)
	return &Outcome{Applied: true, Message: message}, nil
}

func (p *Publisher) fail(stage string, err error) error {
	p.metrics.IncPublish("failed")
	p.logger.Errorf(providers.TypeApp, "Publish stage %s failed: %s", stage, err)
	return &models.StageError{Stage: stage, Err: err}
}

// writeFileAtomic writes via a temp file and rename so a crash mid-write
// never leaves a half-written artifact at the final path.
func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmpFile := path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}
	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}
	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}
	return os.Rename(tmpFile, path)
}
