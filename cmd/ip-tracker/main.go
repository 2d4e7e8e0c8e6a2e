package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/joho/godotenv"
	"github.com/qdm12/goshutdown"
	"github.com/qdm12/goshutdown/goroutine"
	"github.com/qdm12/goshutdown/group"
	"github.com/qdm12/goshutdown/order"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/ip-tracker/internal/app"
	"github.com/qdm12/ip-tracker/internal/config"
	"github.com/qdm12/ip-tracker/internal/display"
	"github.com/qdm12/ip-tracker/internal/httplog"
	"github.com/qdm12/ip-tracker/internal/maps"
	"github.com/qdm12/ip-tracker/internal/models"
	"github.com/qdm12/ip-tracker/internal/resolution"
	"github.com/qdm12/ip-tracker/internal/shoutrrr"
	"github.com/qdm12/ip-tracker/pkg/geolocation"
	"github.com/qdm12/ip-tracker/pkg/publicip"
	"github.com/qdm12/log"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	// A missing .env file is fine, the environment is used as is.
	_ = godotenv.Load()

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, logger, buildInfo, os.Stdin, os.Stdout)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil {
			os.Exit(0)
		}
		logger.Error(err.Error())
		cancel()
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
		}
		logger.Info("Shutdown successful")
	case <-timer.C:
		logger.Warn("Shutdown timed out")
	}

	os.Exit(1)
}

func _main(ctx context.Context, reader *reader.Reader, args []string,
	logger log.LoggerInterface, buildInfo models.BuildInformation,
	stdin io.Reader, stdout io.Writer,
) (err error) {
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Fprintln(stdout, buildInfo.VersionString())
			return nil
		}
	}

	printSplash(stdout, buildInfo)

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	shoutrrrClient, err := shoutrrr.New(shoutrrr.Settings{
		Addresses:    config.Shoutrrr.Addresses,
		DefaultTitle: config.Shoutrrr.DefaultTitle,
		Logger:       logger.New(log.SetComponent("shoutrrr")),
	})
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	client := httplog.NewClient(&http.Client{Timeout: config.Client.Timeout},
		logger.New(log.SetComponent("http")), "apiKey")
	defer client.CloseIdleConnections()

	geoClient, err := geolocation.New(client, config.Geolocation.ToOptions()...)
	if err != nil {
		return fmt.Errorf("creating geolocation client: %w", err)
	}
	defer func() {
		closeErr := geoClient.Close()
		if closeErr != nil {
			logger.Warn("closing geolocation client: " + closeErr.Error())
		}
	}()
	logger.Info("Using geolocation " + geoClient.String())

	ipFetcher, err := publicip.NewFetcher(publicip.DNSSettings{
		Enabled: *config.PubIP.DNSEnabled,
		Options: config.PubIP.ToDNSOptions(),
	}, publicip.HTTPSettings{
		Enabled: *config.PubIP.HTTPEnabled,
		Client:  client,
		Options: config.PubIP.ToHTTPOptions(),
	})
	if err != nil {
		return fmt.Errorf("creating public IP fetcher: %w", err)
	}

	resolver := resolution.New(geoClient, logger.New(log.SetComponent("resolution")))

	terminal := display.New(stdout, display.Settings{
		Colors:    *config.UI.Colors,
		FadeDelay: config.UI.FadeDelay,
	})
	mapView := maps.NewTerminal(stdout, logger.New(log.SetComponent("map")))

	controller := app.New(app.Settings{
		DefaultCenter: maps.Position{Lat: *config.UI.Latitude, Lng: *config.UI.Longitude},
		Zoom:          config.UI.Zoom,
		ErrorDuration: config.UI.ErrorDuration,
		UseDetectedIP: *config.Startup.UseDetectedIP,
	}, resolver, ipFetcher, terminal, mapView, shoutrrrClient,
		logger.New(log.SetComponent("app")))

	const shutdownTimeout = 3 * time.Second
	onSuccess := func(name string) {
		logger.Debug(name + ": terminated")
	}
	onFailure := func(name string, err error) {
		logger.Warn(name + ": " + err.Error())
	}

	resizeHandler, resizeCtx, resizeDone := goshutdown.NewGoRoutineHandler(
		"resize watcher", goroutine.OptionTimeout(shutdownTimeout))
	go func() {
		defer close(resizeDone)
		maps.WatchResize(resizeCtx, config.UI.ResizeDelay, mapView)
	}()

	lookupsHandler, lookupsCtx, lookupsDone := goshutdown.NewGoRoutineHandler(
		"lookups", goroutine.OptionTimeout(shutdownTimeout))
	lookupsEnded := make(chan struct{})
	go func() {
		defer close(lookupsDone)
		linesCtx, cancelLines := context.WithCancel(lookupsCtx)
		defer cancelLines()
		runLookups(lookupsCtx, controller, readLines(linesCtx, stdin), terminal)
		close(lookupsEnded)
	}()

	backgroundGroup := goshutdown.NewGroupHandler("background",
		group.OptionTimeout(shutdownTimeout),
		group.OptionOnSuccess(onSuccess))
	backgroundGroup.Add(resizeHandler)

	orderHandler := goshutdown.NewOrderHandler("ip-tracker",
		order.OptionTimeout(2*shutdownTimeout),
		order.OptionOnSuccess(onSuccess),
		order.OptionOnFailure(onFailure))
	orderHandler.Append(lookupsHandler, backgroundGroup)

	select {
	case <-ctx.Done():
	case <-lookupsEnded:
		logger.Info("End of input reached")
	}

	err = orderHandler.Shutdown(context.Background())
	if err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

type lookuper interface {
	Startup(ctx context.Context)
	Search(ctx context.Context, query string)
}

type waiter interface {
	Wait()
}

// runLookups runs the startup lookup and a search for each line
// received, until the context is canceled, the lines channel is
// closed or the line "quit" is received. It returns once all the
// lookups started have completed and the display has settled.
func runLookups(ctx context.Context, lookuper lookuper,
	lines <-chan string, display waiter,
) {
	var wg sync.WaitGroup
	defer func() {
		wg.Wait()
		display.Wait()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		lookuper.Startup(ctx)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			query := strings.TrimSpace(line)
			if query == "quit" {
				return
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				lookuper.Search(ctx, query)
			}()
		}
	}
}

// readLines sends each line read from reader on the channel
// returned, and closes it once reader is exhausted or the context
// is canceled.
func readLines(ctx context.Context, reader io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(reader)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return lines
}

func printSplash(writer io.Writer, buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "qdm12",
		Repository: "ip-tracker",
		Emails:     []string{"quentin.mcgaw@gmail.com"},
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
		// Sponsor information
		PaypalUser:    "qmcgaw",
		GithubSponsor: "qdm12",
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Fprintln(writer, line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error,
) {
	err = config.Read(reader, logger)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	return config, nil
}
