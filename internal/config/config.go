package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

type Config struct {
	Server   ServerConfig
	Logger   LoggerConfig
	LLM      LLMConfig
	Gemini   GeminiConfig
	Ollama   OllamaConfig
	OpenAI   OpenAIConfig
	Quiz     QuizConfig
	Redis    RedisConfig
	Trending TrendingConfig
	Session  SessionConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	BodyLimitMB  int
}

type LoggerConfig struct {
	Level string
	Env   string
}

// LLMConfig selects the generative backend used by the quiz gateway.
type LLMConfig struct {
	Provider    string
	Model       string
	Timeout     time.Duration
	Temperature float64
}

type GeminiConfig struct {
	APIKey string
	// UseADC authenticates with Application Default Credentials against Vertex AI instead of an API key.
	UseADC   bool
	Project  string
	Location string
	// BaseURL overrides the API endpoint; empty uses the SDK default.
	BaseURL string
}

type OllamaConfig struct {
	ServerURL string
}

type OpenAIConfig struct {
	APIKey string
}

type QuizConfig struct {
	DefaultQuestions  int
	MaxQuestions      int
	RevealDelay       time.Duration
	MaxDocumentMB     int
	ValidateQuestions bool
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type TrendingConfig struct {
	TTL time.Duration
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

func setDefaults() {
	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", "60s")
	viper.SetDefault("server.write_timeout", "120s")
	viper.SetDefault("server.body_limit_mb", 25)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")

	viper.SetDefault("llm.provider", ProviderGemini)
	viper.SetDefault("llm.model", "gemini-2.5-flash")
	viper.SetDefault("llm.timeout", "90s")
	viper.SetDefault("llm.temperature", 0.7)

	viper.SetDefault("gemini.location", "us-central1")
	viper.SetDefault("ollama.server_url", "http://localhost:11434")

	viper.SetDefault("quiz.default_questions", 10)
	viper.SetDefault("quiz.max_questions", 50)
	viper.SetDefault("quiz.reveal_delay", "1500ms")
	viper.SetDefault("quiz.max_document_mb", 20)
	viper.SetDefault("quiz.validate_questions", true)

	viper.SetDefault("redis.db", 0)
	viper.SetDefault("trending.ttl", "30m")
	viper.SetDefault("session.ttl", "2h")
}

func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables still win.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	setDefaults()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout"),
			WriteTimeout: viper.GetDuration("server.write_timeout"),
			BodyLimitMB:  viper.GetInt("server.body_limit_mb"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		LLM: LLMConfig{
			Provider:    strings.ToLower(viper.GetString("llm.provider")),
			Model:       viper.GetString("llm.model"),
			Timeout:     viper.GetDuration("llm.timeout"),
			Temperature: viper.GetFloat64("llm.temperature"),
		},
		Gemini: GeminiConfig{
			APIKey:   viper.GetString("gemini.api_key"),
			UseADC:   viper.GetBool("gemini.use_adc"),
			Project:  viper.GetString("gemini.project"),
			Location: viper.GetString("gemini.location"),
			BaseURL:  viper.GetString("gemini.base_url"),
		},
		Ollama: OllamaConfig{
			ServerURL: viper.GetString("ollama.server_url"),
		},
		OpenAI: OpenAIConfig{
			APIKey: viper.GetString("openai.api_key"),
		},
		Quiz: QuizConfig{
			DefaultQuestions:  viper.GetInt("quiz.default_questions"),
			MaxQuestions:      viper.GetInt("quiz.max_questions"),
			RevealDelay:       viper.GetDuration("quiz.reveal_delay"),
			MaxDocumentMB:     viper.GetInt("quiz.max_document_mb"),
			ValidateQuestions: viper.GetBool("quiz.validate_questions"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Trending: TrendingConfig{
			TTL: viper.GetDuration("trending.ttl"),
		},
		Session: SessionConfig{
			Secret: viper.GetString("session.secret"),
			TTL:    viper.GetDuration("session.ttl"),
		},
	}

	// Conventional variable names that do not follow the key layout.
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		config.Gemini.APIKey = apiKey
	}
	if apiKey := os.Getenv("API_KEY"); apiKey != "" && config.Gemini.APIKey == "" {
		config.Gemini.APIKey = apiKey
	}
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		config.OpenAI.APIKey = apiKey
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the settings that the server cannot start without.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderGemini:
		if c.Gemini.APIKey == "" && !c.Gemini.UseADC {
			return fmt.Errorf("gemini provider requires gemini.api_key (GEMINI_API_KEY) or gemini.use_adc")
		}
	case ProviderOllama:
		if c.Ollama.ServerURL == "" {
			return fmt.Errorf("ollama provider requires ollama.server_url")
		}
	case ProviderOpenAI:
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("openai provider requires openai.api_key (OPENAI_API_KEY)")
		}
	default:
		return fmt.Errorf("unsupported llm.provider %q", c.LLM.Provider)
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model must be set")
	}
	if c.Quiz.DefaultQuestions <= 0 || c.Quiz.MaxQuestions < c.Quiz.DefaultQuestions {
		return fmt.Errorf("quiz.default_questions must be positive and not exceed quiz.max_questions")
	}
	if c.Quiz.RevealDelay < 0 {
		return fmt.Errorf("quiz.reveal_delay must not be negative")
	}
	return nil
}

// MaxDocumentBytes is the largest document accepted for generation.
func (q QuizConfig) MaxDocumentBytes() int64 {
	return int64(q.MaxDocumentMB) * 1024 * 1024
}
