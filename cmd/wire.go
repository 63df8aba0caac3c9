package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/sortcell/internal/adapters/logging"
	builtinprofile "github.com/bnema/sortcell/internal/adapters/profile/builtin"
	chainprofile "github.com/bnema/sortcell/internal/adapters/profile/chain"
	fileprofile "github.com/bnema/sortcell/internal/adapters/profile/file"
	reportadapter "github.com/bnema/sortcell/internal/adapters/render/report"
	tomlrepo "github.com/bnema/sortcell/internal/adapters/repo/toml"
	"github.com/bnema/sortcell/internal/adapters/workcell/sim"
	"github.com/bnema/sortcell/internal/application"
	"github.com/bnema/sortcell/internal/domain"
	"github.com/bnema/sortcell/internal/ports"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".sortcell"
	envPrefix  = "SORTCELL"

	profileDirKey        = "profile.dir"
	profileNameKey       = "profile.name"
	stallTimeoutKey      = "navigation.stall_timeout"
	keepAliveIntervalKey = "keepalive.interval"
	logLevelKey          = "log.level"
	logFormatKey         = "log.format"
	simKeepAliveFailKey  = "sim.keepalive_fail_every"
)

var errNoHardwareDriver = errors.New("no hardware workcell driver is available; run with --sim")

type settings struct {
	ProfileDir            string
	ProfileName           string
	LogLevel              string
	LogFormat             string
	StallTimeout          time.Duration
	KeepAliveInterval     time.Duration
	SimKeepAliveFailEvery int
}

type app struct {
	settings      settings
	layouts       *tomlrepo.LayoutRepository
	profiles      ports.ProfileSource
	profileFiles  *fileprofile.Source
	runRenderer   func(application.RunSummary, []application.BatchReport, domain.BatchLimits) (string, error)
	batchRenderer func(application.BatchReport, domain.BatchLimits) (string, error)
	now           func() time.Time
	newRunID      func() string
}

func wireApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	layouts, err := tomlrepo.NewLayoutRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire layout repository: %w", err)
	}

	s := settings{
		ProfileDir:            cfg.GetString(profileDirKey),
		ProfileName:           cfg.GetString(profileNameKey),
		LogLevel:              cfg.GetString(logLevelKey),
		LogFormat:             cfg.GetString(logFormatKey),
		StallTimeout:          cfg.GetDuration(stallTimeoutKey),
		KeepAliveInterval:     cfg.GetDuration(keepAliveIntervalKey),
		SimKeepAliveFailEvery: cfg.GetInt(simKeepAliveFailKey),
	}
	if s.SimKeepAliveFailEvery < 0 {
		return nil, fmt.Errorf("%s must not be negative, got %d", simKeepAliveFailKey, s.SimKeepAliveFailEvery)
	}

	profileFiles := fileprofile.NewSource(s.ProfileDir)
	profiles, err := chainprofile.NewSource(profileFiles, builtinprofile.Source{})
	if err != nil {
		return nil, fmt.Errorf("wire profile source chain: %w", err)
	}

	return &app{
		settings:      s,
		layouts:       layouts,
		profiles:      profiles,
		profileFiles:  profileFiles,
		runRenderer:   reportadapter.RenderRun,
		batchRenderer: reportadapter.RenderBatch,
		now:           time.Now,
		newRunID:      uuid.NewString,
	}, nil
}

func loadConfig() (*viper.Viper, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg := viper.New()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, configDir))
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(tomlrepo.LayoutPathKey, filepath.Join(homeDir, configDir, "layout.toml"))
	cfg.SetDefault(profileDirKey, filepath.Join(homeDir, configDir, "profiles"))
	cfg.SetDefault(profileNameKey, domain.DefaultProfileName)
	cfg.SetDefault(stallTimeoutKey, application.DefaultStallTimeout)
	cfg.SetDefault(keepAliveIntervalKey, application.DefaultKeepAliveInterval)
	cfg.SetDefault(logLevelKey, "info")
	cfg.SetDefault(logFormatKey, logging.FormatText)
	cfg.SetDefault(simKeepAliveFailKey, 0)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}

func (a *app) newLogger(output io.Writer) (*logging.Logger, error) {
	logger, err := logging.New(logging.Options{
		Level:  a.settings.LogLevel,
		Format: a.settings.LogFormat,
		Output: output,
	})
	if err != nil {
		return nil, fmt.Errorf("configure logger: %w", err)
	}

	return logger, nil
}

// workcell bundles the services driving one simulated workcell.
type workcell struct {
	layout    domain.Layout
	cell      *sim.Workcell
	cycle     *application.CycleService
	navigator *application.NavigationService
	keepAlive *application.KeepAlive
}

type workcellOptions struct {
	Start float64
	Seed  uint64
}

func (a *app) newSimWorkcell(ctx context.Context, logger ports.Logger, opts workcellOptions) (*workcell, error) {
	layout, err := a.layouts.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}

	cfg := sim.DefaultConfig()
	cfg.KeepAliveFailEvery = a.settings.SimKeepAliveFailEvery
	for _, bin := range layout.Bins {
		if _, ok := cfg.Bins[bin]; !ok {
			return nil, fmt.Errorf("simulated workcell has no site for %w %q", domain.ErrUnknownBin, bin)
		}
	}

	clock := sim.NewClock(a.now())
	cell := sim.New(cfg, clock, opts.Start)

	loader := application.NewLoadingService(cell, cell, layout, clock, logger)
	if opts.Seed != 0 {
		rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))
		loader.SetSeedSource(func() int {
			return rng.IntN(len(cfg.Catalog)) + 1
		})
	}

	dumper := application.NewDumpService(cell, a.profiles, a.settings.ProfileName, clock, logger)
	navigator := application.NewNavigationService(cell, dumper, layout.Approach, clock, logger)
	navigator.SetStallTimeout(a.settings.StallTimeout)

	return &workcell{
		layout:    layout,
		cell:      cell,
		cycle:     application.NewCycleService(loader, navigator, clock, logger),
		navigator: navigator,
		keepAlive: application.NewKeepAlive(cell, a.settings.KeepAliveInterval, clock, logger),
	}, nil
}
