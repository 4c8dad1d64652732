package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/centraunit/digo"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type FirstDep interface {
	SaySomething() string
}

type firstDep struct {
	greeting string
}

func (d *firstDep) SaySomething() string { return d.greeting }

type SecondDep interface {
	SaySomething() string
}

type secondDep struct {
	greeting string
}

func (d *secondDep) SaySomething() string { return d.greeting }

type ThirdDep interface {
	SaySomething() []string
}

type thirdDep struct {
	first  FirstDep
	second SecondDep
}

func newThirdDep(r *digo.Resolver) (ThirdDep, error) {
	first, err := digo.Resolve[FirstDep](r)
	if err != nil {
		return nil, err
	}
	second, err := digo.Resolve[SecondDep](r)
	if err != nil {
		return nil, err
	}
	return &thirdDep{first: first, second: second}, nil
}

func (t *thirdDep) SaySomething() []string {
	return []string{"Hello World! (from thirdDep)", t.first.SaySomething(), t.second.SaySomething()}
}

func newLogger() zerolog.Logger {
	// A missing .env file is fine, the environment still applies
	_ = godotenv.Load()

	level, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL")))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logger = zerolog.New(os.Stdout)
	} else {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	return logger.Level(level).With().Timestamp().Str("service", "digo-example").Logger()
}

func run(logger zerolog.Logger) error {
	reg := digo.NewRegistry(digo.WithLogger(logger))

	// Registered twice on purpose, the second registration replaces the first
	if err := digo.BindSingletonFunc[FirstDep](reg, func() FirstDep { return &firstDep{greeting: "Hello World! (from firstDep)"} }); err != nil {
		return err
	}
	if err := digo.BindSingletonFunc[FirstDep](reg, func() FirstDep { return &firstDep{greeting: "Hello World! (from firstDep)"} }); err != nil {
		return err
	}
	if err := digo.BindTransientFunc[SecondDep](reg, func() SecondDep { return &secondDep{greeting: "Hello World! (from secondDep)"} }); err != nil {
		return err
	}
	if err := digo.BindSingleton(reg, newThirdDep); err != nil {
		return err
	}

	resolver, err := reg.Build()
	if err != nil {
		return err
	}
	defer func() {
		if err := resolver.Close(); err != nil {
			logger.Error().Err(err).Msg("closing resolver")
		}
	}()

	for i := 1; i <= 3; i++ {
		first, err := digo.Resolve[FirstDep](resolver)
		if err != nil {
			return err
		}
		logger.Info().Int("attempt", i).Str("address", fmt.Sprintf("%p", first)).Msg("firstDep (singleton)")
	}
	for i := 1; i <= 3; i++ {
		second, err := digo.Resolve[SecondDep](resolver)
		if err != nil {
			return err
		}
		logger.Info().Int("attempt", i).Str("address", fmt.Sprintf("%p", second)).Msg("secondDep (transient)")
	}
	for i := 1; i <= 3; i++ {
		third, err := digo.Resolve[ThirdDep](resolver)
		if err != nil {
			return err
		}
		logger.Info().Int("attempt", i).Str("address", fmt.Sprintf("%p", third)).Msg("thirdDep (singleton)")
	}

	third := digo.MustResolve[ThirdDep](resolver)
	for _, line := range third.SaySomething() {
		logger.Info().Msg(line)
	}
	return nil
}

func main() {
	logger := newLogger()
	if err := run(logger); err != nil {
		logger.Error().Err(err).Msg("example failed")
		os.Exit(1)
	}
}
