package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/lshigami/sciencegrader/internal/grading"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// QuestionSlots is the number of answer/feedback/guideline column triples in the submissions table.
const QuestionSlots = 3

type Config struct {
	Server          Server
	Database        Database
	Gemini          Gemini
	Log             Log
	TeacherPassword string
	ClassTitle      string
	Questions       []grading.Question
}

type Server struct {
	Port               string
	Mode               string // "debug" or "release"
	CORSAllowedOrigins []string
	SubmitRatePerMin   int
}

type Database struct {
	Driver   string // "postgres" or "sqlite"
	DSN      string // overrides the discrete fields when set; file path for sqlite
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Gemini struct {
	ApiKey         string
	Model          string
	GradingTimeout time.Duration
}

type Log struct {
	Level string
	File  string
}

// DefaultQuestions is the question set used when no QUESTIONS_FILE is configured.
func DefaultQuestions() []grading.Question {
	return []grading.Question{
		{
			Index:  1,
			Title:  "서술형 문제 1",
			Prompt: "기체 입자들의 운동과 온도의 관계를 서술하세요.",
			Rubric: "기체 입자의 운동은 온도와 비례 관계임을 언급하고, 입자 충돌·속도 증가 예를 기술한다.",
		},
		{
			Index:  2,
			Title:  "서술형 문제 2",
			Prompt: "보일 법칙에 대해 설명하세요.",
			Rubric: "일정한 온도에서, 기체의 압력과 부피가 서로 반비례한다.",
		},
		{
			Index:  3,
			Title:  "서술형 문제 3",
			Prompt: "열에너지 이동 3가지 방식(전도·대류·복사)을 설명하세요.",
			Rubric: "전도는 입자 간 직접 충돌, 대류는 유체의 순환, 복사는 전자기파를 통한 열 이동 방식이다.",
		},
	}
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_MODE", "debug")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("SUBMIT_RATE_PER_MINUTE", 30)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	viper.SetDefault("GRADING_TIMEOUT", "30s")
	viper.SetDefault("TEACHER_PASSWORD", "1234")
	viper.SetDefault("CLASS_TITLE", "예시 수업 제목")
	viper.SetDefault("LOG_LEVEL", "info")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Server.Mode = viper.GetString("SERVER_MODE")
	config.Server.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	config.Server.SubmitRatePerMin = viper.GetInt("SUBMIT_RATE_PER_MINUTE")

	config.Database.Driver = strings.ToLower(viper.GetString("DATABASE_DRIVER"))
	config.Database.DSN = viper.GetString("DATABASE_DSN")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.Gemini.ApiKey = viper.GetString("GEMINI_API_KEY")
	config.Gemini.Model = viper.GetString("GEMINI_MODEL")
	config.Gemini.GradingTimeout = viper.GetDuration("GRADING_TIMEOUT")

	config.Log.Level = viper.GetString("LOG_LEVEL")
	config.Log.File = viper.GetString("LOG_FILE")

	config.TeacherPassword = viper.GetString("TEACHER_PASSWORD")
	config.ClassTitle = viper.GetString("CLASS_TITLE")

	config.Questions = DefaultQuestions()
	if path := viper.GetString("QUESTIONS_FILE"); path != "" {
		questions, err := LoadQuestions(path)
		if err != nil {
			return nil, err
		}
		config.Questions = questions
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	log.Info().
		Str("port", config.Server.Port).
		Str("mode", config.Server.Mode).
		Str("dbDriver", config.Database.Driver).
		Str("geminiModel", config.Gemini.Model).
		Bool("geminiKeySet", config.Gemini.ApiKey != "").
		Int("questions", len(config.Questions)).
		Msg("Config loaded")
	return &config, nil
}

// LoadQuestions reads a YAML file of the form:
//
//	questions:
//	  - index: 1
//	    title: ...
//	    prompt: ...
//	    rubric: ...
func LoadQuestions(path string) ([]grading.Question, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read questions file %s: %w", path, err)
	}
	var questions []grading.Question
	if err := v.UnmarshalKey("questions", &questions); err != nil {
		return nil, fmt.Errorf("failed to parse questions file %s: %w", path, err)
	}
	return questions, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q (want postgres or sqlite)", c.Database.Driver)
	}
	if c.Gemini.GradingTimeout <= 0 {
		return fmt.Errorf("GRADING_TIMEOUT must be positive, got %s", c.Gemini.GradingTimeout)
	}
	if c.TeacherPassword == "" {
		return fmt.Errorf("TEACHER_PASSWORD must not be empty")
	}
	return ValidateQuestions(c.Questions)
}

// ValidateQuestions requires indices 1..n in order, non-empty prompts and rubrics,
// and no more questions than the submissions table has slots for.
func ValidateQuestions(questions []grading.Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("at least one question is required")
	}
	if len(questions) > QuestionSlots {
		return fmt.Errorf("%d questions configured but only %d fit in a submission row", len(questions), QuestionSlots)
	}
	for i, q := range questions {
		if q.Index != i+1 {
			return fmt.Errorf("question at position %d has index %d, want %d", i, q.Index, i+1)
		}
		if strings.TrimSpace(q.Prompt) == "" {
			return fmt.Errorf("question %d has an empty prompt", q.Index)
		}
		if strings.TrimSpace(q.Rubric) == "" {
			return fmt.Errorf("question %d has an empty rubric", q.Index)
		}
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
