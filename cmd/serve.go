package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Bitlatte/teamsite/internal/config"
)

const rebuildDebounce = 500 * time.Millisecond

var serverPort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the site locally and watches for changes",
	Long: `The serve command performs an initial build of your site, then starts a local
web server for the output directory. It watches the content, data, layouts
and static directories and rebuilds the site when they change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, appConfig, logger, serverPort)
	},
}

func serve(ctx context.Context, cfg config.Config, log logrus.FieldLogger, port int) error {
	if err := runBuild(ctx, cfg, log); err != nil {
		return fmt.Errorf("initial build failed: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	for _, root := range []string{cfg.ContentDir, cfg.DataDir, cfg.LayoutsDir, cfg.StaticDir} {
		watchTree(watcher, log, root)
	}

	rb := &rebuilder{build: func() error { return runBuild(ctx, cfg, log) }, log: log}
	go watch(ctx, watcher, rb, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           newSiteHandler(cfg.OutputDir),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.WithFields(logrus.Fields{"dir": cfg.OutputDir, "addr": "http://localhost" + srv.Addr}).Info("serving site, press Ctrl+C to stop")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	return nil
}

// newSiteHandler serves dir with caching disabled. Directory paths without
// an index.html are 404s rather than listings.
func newSiteHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))
	r := mux.NewRouter()
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasSuffix(req.URL.Path, "/") && req.URL.Path != "/" {
			if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(req.URL.Path), "index.html")); err != nil {
				http.NotFound(w, req)
				return
			}
		}
		w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
		w.Header().Set("Pragma", "no-cache")
		w.Header().Set("Expires", "0")
		files.ServeHTTP(w, req)
	})
	return gziphandler.GzipHandler(r)
}

// watchTree adds root and every directory below it to the watcher.
func watchTree(watcher *fsnotify.Watcher, log logrus.FieldLogger, root string) {
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		log.WithField("dir", root).Info("directory not found, not watching")
		return
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			log.WithError(err).WithField("path", path).Warn("error walking directory")
			return nil
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				log.WithError(err).WithField("path", path).Warn("failed to watch directory")
			}
		}
		return nil
	})
	if err != nil {
		log.WithError(err).WithField("dir", root).Warn("error setting up watch")
	}
}

func watch(ctx context.Context, watcher *fsnotify.Watcher, rb *rebuilder, log logrus.FieldLogger) {
	for {
		select {
		case <-ctx.Done():
			rb.stop()
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.WithFields(logrus.Fields{"path": event.Name, "op": event.Op.String()}).Info("change detected")
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					watchTree(watcher, log, event.Name)
				}
			}
			rb.trigger(rebuildDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.WithError(err).Warn("watcher error")
		}
	}
}

// rebuilder debounces rebuild requests and never runs two builds at once.
type rebuilder struct {
	build func() error
	log   logrus.FieldLogger

	mu      sync.Mutex
	timer   *time.Timer
	running sync.Mutex
}

func (r *rebuilder) trigger(delay time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil {
		r.timer.Stop()
	}
	r.timer = time.AfterFunc(delay, r.run)
}

func (r *rebuilder) run() {
	r.running.Lock()
	defer r.running.Unlock()
	r.log.Info("rebuilding site")
	if err := r.build(); err != nil {
		r.log.WithError(err).Error("rebuild failed")
		return
	}
	r.log.Info("site rebuilt")
}

func (r *rebuilder) stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil {
		r.timer.Stop()
	}
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 1313, "Port to serve the site on")
	rootCmd.AddCommand(serveCmd)
}
