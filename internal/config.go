package internal

import (
	env "github.com/Netflix/go-env"
)

// Config carries the tunables of the model. Every field has a default
// matching the documented behavior, so an empty environment is valid.
type Config struct {
	ScoreUserWeight    float64 `env:"SCORE_USER_WEIGHT,default=0.6"`
	ScoreMessageWeight float64 `env:"SCORE_MESSAGE_WEIGHT,default=0.3"`
	ScoreChatWeight    float64 `env:"SCORE_CHAT_WEIGHT,default=0.1"`

	HashMemory      int `env:"HASH_MEMORY,default=65536"`
	HashIterations  int `env:"HASH_ITERATIONS,default=3"`
	HashParallelism int `env:"HASH_PARALLELISM,default=2"`
}

func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, err
	}
	return config, nil
}
