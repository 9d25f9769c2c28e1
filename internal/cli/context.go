package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/recipebox/internal/config"
	"github.com/idilsaglam/recipebox/internal/logging"
	"github.com/idilsaglam/recipebox/internal/recipe"
	"github.com/idilsaglam/recipebox/internal/store"
	"github.com/idilsaglam/recipebox/internal/store/jsonstore"
	"github.com/idilsaglam/recipebox/internal/store/memstore"
	"github.com/idilsaglam/recipebox/internal/store/sqlitestore"
	"github.com/idilsaglam/recipebox/internal/ui"
)

// ErrReported marks a failure the user has already been told about. main
// exits non-zero without printing it again.
var ErrReported = errors.New("reported")

type commandContext struct {
	configFlag    *string
	ephemeralFlag *bool

	configOnce  sync.Once
	config      *config.Config
	configPath  string
	configFound bool
	configErr   error

	logOnce sync.Once
	logger  *zap.Logger
	logErr  error
}

func newCommandContext(configFlag *string, ephemeralFlag *bool) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		ephemeralFlag: ephemeralFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, found, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.configPath, c.configFound = resolved, found
		if c.ephemeralFlag != nil && *c.ephemeralFlag {
			cfg.Storage.Backend = config.BackendMemory
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*zap.Logger, error) {
	c.logOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logErr = err
			return
		}
		file := cfg.Logging.File
		if !cfg.LogsToFile() {
			file = logging.Stderr
		}
		c.logger, c.logErr = logging.New(cfg.Logging.Level, file)
	})
	return c.logger, c.logErr
}

// session is one command's view of the recipe store.
type session struct {
	cfg   *config.Config
	log   *zap.Logger
	store store.Store
	repo  *recipe.Repository
	close func() error

	errorNotices int
}

// openSession opens the configured store and wires a repository whose
// notices go through n. Error notices are counted so commands can tell
// whether a failure was already shown.
func (c *commandContext) openSession(n recipe.Notifier) (*session, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	log, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	s, closeFn, err := openStore(cfg)
	if err != nil {
		log.Error("open store", zap.String("backend", cfg.Storage.Backend), zap.Error(err))
		return nil, err
	}
	sess := &session{cfg: cfg, log: log, store: s, close: closeFn}
	counting := recipe.NotifierFunc(func(notice recipe.Notice) {
		if notice.Severity == recipe.Error {
			sess.errorNotices++
		}
		if n != nil {
			n.Notify(notice)
		}
	})
	sess.repo = recipe.New(s, log, counting, recipe.Options{
		Key:      cfg.Storage.Key,
		MaxBytes: cfg.Storage.MaxBytes,
	})
	log.Debug("session opened", zap.String("backend", cfg.Storage.Backend))
	return sess, nil
}

func (s *session) Close() error {
	_ = s.log.Sync()
	if s.close == nil {
		return nil
	}
	return s.close()
}

// fail marks err as reported when a notice already described it.
func (s *session) fail(err error) error {
	if err == nil {
		return nil
	}
	if s.errorNotices > 0 {
		return fmt.Errorf("%w: %w", ErrReported, err)
	}
	return err
}

func openStore(cfg *config.Config) (store.Store, func() error, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return memstore.New(0), nil, nil
	case config.BackendSQLite:
		s, err := sqlitestore.Open(cfg.SQLitePath())
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		s, err := jsonstore.Open(cfg.Storage.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return s, nil, nil
	}
}

// withSession runs fn against a session whose notices print to the
// command's output streams.
func (c *commandContext) withSession(cmd *cobra.Command, fn func(*session, io.Writer) error) error {
	out := cmd.OutOrStdout()
	sess, err := c.openSession(ui.Notifier(out, cmd.ErrOrStderr()))
	if err != nil {
		return err
	}
	defer sess.Close()
	return sess.fail(fn(sess, out))
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
