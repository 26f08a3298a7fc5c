package monitor

import (
	"context"
	"net/http"
	"time"

	"github.com/roylee0704/gron"

	"newsd/internal/providers"
	"newsd/internal/structures"
)

type SchedulerInterface interface {
	Init()
	Stop()
}

// Scheduler runs the periodic background jobs: an online check against the
// published site and session pruning.
type Scheduler struct {
	conf     *structures.Config
	logger   providers.Logger
	sessions providers.SessionProviderInterface
	metrics  providers.MetricsProviderInterface
	client   *http.Client
	cron     *gron.Cron
}

func NewScheduler(conf *structures.Config, logger providers.Logger, sessions providers.SessionProviderInterface, metrics providers.MetricsProviderInterface) SchedulerInterface {
	return &Scheduler{
		conf:     conf,
		logger:   logger,
		sessions: sessions,
		metrics:  metrics,
		client:   &http.Client{},
	}
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	if s.conf.Monitor.Enabled {
		s.cron.AddFunc(gron.Every(s.conf.Monitor.Interval), s.checkOnline)
	}
	s.cron.AddFunc(gron.Every(time.Hour), func() {
		s.sessions.Prune()
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *Scheduler) checkOnline() {
	ctx, cancel := context.WithTimeout(context.Background(), s.conf.Monitor.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.conf.Monitor.SiteURL, nil)
	if err != nil {
		s.logger.Errorf(providers.TypeApp, "Site check setup failed: %s", err)
		return
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warnf(providers.TypeApp, "Site check failed: %s", err)
		s.metrics.SetSiteUp(false)
		return
	}
	resp.Body.Close()

	up := resp.StatusCode == http.StatusOK
	s.metrics.SetSiteUp(up)
	if up {
		s.logger.Infof(providers.TypeApp, "Site is online: %s", s.conf.Monitor.SiteURL)
	} else {
		s.logger.Warnf(providers.TypeApp, "Site check returned status %d", resp.StatusCode)
	}
}
