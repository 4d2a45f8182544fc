package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jobtracker/api-gateway/client"
)

const (
	keyConfig    = "config"
	keyAPIURL    = "api-url"
	keyToken     = "token"
	keyRedisAddr = "redis-addr"
	keyCacheTTL  = "cache-ttl"
	keyOutput    = "output"
	keyVerbose   = "verbose"
)

// cli carries the state shared by every subcommand.
type cli struct {
	v      *viper.Viper
	out    io.Writer
	log    *logrus.Logger
	now    func() time.Time
	client *client.Client
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	log := logrus.New()
	log.SetOutput(errOut)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)

	app := &cli{v: viper.New(), out: out, log: log, now: time.Now}

	root := &cobra.Command{
		Use:           "jobtracker",
		Short:         "Track job applications from the terminal",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return app.setup()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.String(keyConfig, "", "config file (yaml, json or toml)")
	flags.String(keyAPIURL, "http://localhost:8080", "API base URL")
	flags.String(keyToken, "", "access token sent as a bearer token")
	flags.String(keyRedisAddr, "", "share cached reads through this Redis server")
	flags.Duration(keyCacheTTL, 5*time.Minute, "lifetime of Redis cache entries")
	flags.StringP(keyOutput, "o", formatTable, "output format: table, json or yaml")
	flags.BoolP(keyVerbose, "v", false, "log debug output to stderr")
	_ = app.v.BindPFlags(flags)

	app.v.SetEnvPrefix("jobtracker")
	app.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	app.v.AutomaticEnv()

	root.AddCommand(
		app.listCmd(),
		app.showCmd(),
		app.addCmd(),
		app.setStatusCmd(),
		app.deleteCmd(),
		app.interviewsCmd(),
		app.scheduleCmd(),
		app.activityCmd(),
		app.statsCmd(),
		app.companiesCmd(),
		app.analyticsCmd(),
	)
	return root
}

// setup reads the config file and builds the API client once flags are parsed.
func (a *cli) setup() error {
	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	if a.v.GetBool(keyVerbose) {
		a.log.SetLevel(logrus.DebugLevel)
	}
	if err := checkFormat(a.v.GetString(keyOutput)); err != nil {
		return err
	}

	opts := []client.Option{client.WithToken(a.v.GetString(keyToken))}
	if addr := a.v.GetString(keyRedisAddr); addr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: addr})
		namespace := cacheNamespace(a.v.GetString(keyAPIURL), a.v.GetString(keyToken))
		opts = append(opts, client.WithCache(client.NewRedisCache(rdb, namespace, a.v.GetDuration(keyCacheTTL))))
		a.log.WithFields(logrus.Fields{"addr": addr, "namespace": namespace}).Debug("using redis cache")
	}
	a.client = client.New(a.v.GetString(keyAPIURL), opts...)
	a.log.WithField("api_url", a.v.GetString(keyAPIURL)).Debug("client ready")
	return nil
}

// cacheNamespace keeps cached reads of different users and servers apart.
func cacheNamespace(apiURL, token string) string {
	sum := sha256.Sum256([]byte(apiURL + "\x00" + token))
	return "jobtracker:" + hex.EncodeToString(sum[:8])
}
