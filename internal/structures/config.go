package structures

import "time"

type Server struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"required|uint|min:1"`
}

type StorageConfig struct {
	CardsPath    string `yaml:"cardsPath" validate:"required|unixPath"`
	VisitorsPath string `yaml:"visitorsPath" validate:"required|unixPath"`
}

type PublishConfig struct {
	RepoDir     string        `yaml:"repoDir" validate:"required|unixPath"`
	Artifact    string        `yaml:"artifact" validate:"required"`
	Collection  string        `yaml:"collection" validate:"required"`
	AuthorName  string        `yaml:"authorName" validate:"required"`
	AuthorEmail string        `yaml:"authorEmail" validate:"required"`
	PushTimeout time.Duration `yaml:"pushTimeout" validate:"required|min:1"`
}

type AuthConfig struct {
	PasswordHash string        `yaml:"passwordHash" validate:"required"`
	SessionTTL   time.Duration `yaml:"sessionTTL" validate:"required|min:1"`
}

type RenderConfig struct {
	AdminHash string `yaml:"adminHash"`
}

type ChatConfig struct {
	URL     string        `yaml:"url"`
	APIKey  string        `yaml:"apiKey"`
	Timeout time.Duration `yaml:"timeout"`
}

type MonitorConfig struct {
	Enabled  bool          `yaml:"enabled"`
	SiteURL  string        `yaml:"siteUrl"`
	Interval time.Duration `yaml:"interval"`
	Timeout  time.Duration `yaml:"timeout"`
}

type LoggerConfig struct {
	Level string `yaml:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `yaml:"mode" validate:"required|uint"`
	Dir   string `yaml:"dir" validate:"required|unixPath"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Size    int           `yaml:"size"`
	TTL     time.Duration `yaml:"ttl"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server        `yaml:"webServer"`
	Storage   StorageConfig `yaml:"storage"`
	Publish   PublishConfig `yaml:"publish"`
	Auth      AuthConfig    `yaml:"auth"`
	Render    RenderConfig  `yaml:"render"`
	Chat      ChatConfig    `yaml:"chat"`
	Monitor   MonitorConfig `yaml:"monitor"`
	Logger    LoggerConfig  `yaml:"logger"`
	Cache     CacheConfig   `yaml:"cache"`
	Metrics   MetricsConfig `yaml:"metrics"`
}
