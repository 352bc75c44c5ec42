package main

import (
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"rtalks.io/rtalks-web/internal/backend"
	"rtalks.io/rtalks-web/internal/config"
	mw "rtalks.io/rtalks-web/internal/middleware"
	"rtalks.io/rtalks-web/internal/observability"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	// devMode is set in main() based on env: RTALKS_WEB_DEV (preferred) or DEV (fallback)
	devMode   bool
	tmplCache *template.Template

	siteConfig config.Config
	appLogger  = zap.NewNop()

	// One client per backend; the request's Host header picks between them.
	devAPIClient  *backend.Client
	prodAPIClient *backend.Client
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	var (
		addr     string
		cfgPath  string
		tmplPath string
		pubPath  string
	)
	flag.StringVar(&addr, "addr", "", "HTTP listen address (overrides config)")
	flag.StringVar(&cfgPath, "config", "", "config file path")
	flag.StringVar(&tmplPath, "templates", "", "templates directory (overrides config)")
	flag.StringVar(&pubPath, "public", "", "public assets directory (overrides config)")
	flag.Parse()

	logger, err := observability.NewLogger()
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	appLogger = logger

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if tmplPath != "" {
		cfg.TemplatesDir = tmplPath
	}
	if pubPath != "" {
		cfg.PublicDir = pubPath
	}
	siteConfig = cfg
	templatesDir = cfg.TemplatesDir
	publicDir = cfg.PublicDir

	// Dev mode: prefer RTALKS_WEB_DEV, fallback to DEV
	devMode = os.Getenv("RTALKS_WEB_DEV") != "" || os.Getenv("DEV") != ""

	if !devMode {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			logger.Fatal("parse templates", zap.Error(err))
		}
		tmplCache = tc
	}

	initAPIClients()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("web listening",
		zap.String("addr", cfg.Addr),
		zap.Bool("dev_mode", devMode))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}
}

func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(chimw.RealIP)
	r.Use(mw.Logger(appLogger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	assets := http.StripPrefix("/assets/", mw.Assets(filepath.Join(publicDir, "assets")))
	r.Handle("/assets/*", assets)

	r.Get("/", HomeHandler)
	r.Post("/orders", OrdersHandler)
	r.Get("/payment/callback", PaymentCallbackHandler)

	return r
}

func initAPIClients() {
	b := siteConfig.Backend
	if b.BaseURL != "" {
		c := backend.NewClient(b.BaseURL, appLogger)
		devAPIClient, prodAPIClient = c, c
		return
	}
	devAPIClient = backend.NewClient(b.DevBaseURL, appLogger)
	prodAPIClient = backend.NewClient(b.ProdBaseURL, appLogger)
}

// apiClientFor picks the backend for the host the page was requested on:
// loopback hosts talk to the development backend, everything else production.
func apiClientFor(r *http.Request) *backend.Client {
	b := siteConfig.Backend
	resolved := backend.ResolveBaseURL(r.Host, b.DevBaseURL, b.ProdBaseURL, b.BaseURL)
	if b.BaseURL == "" && resolved == b.DevBaseURL {
		return devAPIClient
	}
	return prodAPIClient
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

// render executes a page template. In dev mode, templates are reparsed on each request.
func render(w http.ResponseWriter, r *http.Request, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	var t *template.Template
	if devMode {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return
		}
		t = tc
	} else {
		t = tmplCache
	}
	if t == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, page, data); err != nil {
		http.Error(w, fmt.Sprintf("template exec error: %v", err), http.StatusInternalServerError)
		return
	}
}
