package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	gcsstorage "cloud.google.com/go/storage"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/Pavitra-programmers/Resume-Parser/internal/ai"
	"github.com/Pavitra-programmers/Resume-Parser/internal/archive"
	"github.com/Pavitra-programmers/Resume-Parser/internal/config"
	"github.com/Pavitra-programmers/Resume-Parser/internal/export"
	"github.com/Pavitra-programmers/Resume-Parser/internal/extraction"
	"github.com/Pavitra-programmers/Resume-Parser/internal/search"
	"github.com/Pavitra-programmers/Resume-Parser/internal/service"
	"github.com/Pavitra-programmers/Resume-Parser/internal/store"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()
	ctx := context.Background()

	st := buildStore(ctx, cfg, logger)

	aiClient := ai.NewClient(cfg.AI.APIKey, logger)
	if aiClient == nil {
		logger.Info("gemini disabled, no API key configured")
	} else {
		aiClient.WithModel(cfg.AI.Model).WithTimeout(cfg.AI.Timeout)
		aiClient.ValidateSchema = cfg.AI.Validate
	}

	cascade := buildCascade(cfg, aiClient, logger)

	parser := service.NewParserService(cascade, st, logger)
	if aiClient != nil {
		parser.SetNormalizer(aiClient)
	}

	if cfg.Search.AppID != "" {
		algolia, err := search.NewAlgoliaClient(search.Config{
			AppID:     cfg.Search.AppID,
			APIKey:    cfg.Search.APIKey,
			IndexName: cfg.Search.IndexName,
		})
		if err != nil {
			log.Fatalf("failed to create algolia client: %v", err)
		}
		parser.SetIndexer(algolia)
	}

	if cfg.Archive.Bucket != "" {
		gcsClient, err := gcsstorage.NewClient(ctx)
		if err != nil {
			log.Fatalf("failed to create storage client: %v", err)
		}
		defer gcsClient.Close()
		parser.SetArchiver(archive.NewGCSArchiver(gcsClient.Bucket(cfg.Archive.Bucket), logger))
	}

	exporter := export.NewService(st, logger)
	handler := service.NewHandler(parser, exporter, cfg.Server.MaxUploadSize, logger)

	router := gin.New()
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = cfg.Server.MaxUploadSize
	handler.Register(router)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{cfg.Server.AllowedOrigin},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "User-Agent"},
	})

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: h2c.NewHandler(c.Handler(router), &http2.Server{}),
	}

	logger.Info("server starting", "addr", cfg.Server.Addr, "store", cfg.Store.Backend)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

// buildStore selects the candidate store backend. Missing credentials never
// abort startup: the server degrades to an in-memory store pre-seeded with
// mock records so the read endpoints stay usable.
func buildStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) store.Store {
	if !cfg.HasStoreCredentials() {
		logger.Warn("store credentials missing, using in-memory store with mock data",
			"backend", cfg.Store.Backend)
		mem := store.NewMemoryStore()
		mem.SeedMockCandidates()
		return mem
	}

	switch cfg.Store.Backend {
	case "sheets":
		var opts []option.ClientOption
		if cfg.Store.CredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(cfg.Store.CredentialsFile))
		}
		svc, err := sheets.NewService(ctx, opts...)
		if err != nil {
			logger.Warn("failed to create sheets client, using in-memory store with mock data",
				"error", err)
			mem := store.NewMemoryStore()
			mem.SeedMockCandidates()
			return mem
		}
		st := store.NewSheetsStore(svc, cfg.Store.SpreadsheetID, cfg.Store.SheetName)
		if err := st.EnsureHeader(ctx); err != nil {
			logger.Warn("failed to ensure sheet header", "error", err)
		}
		return st

	case "firestore":
		client, err := firestore.NewClient(ctx, cfg.Store.ProjectID)
		if err != nil {
			logger.Warn("failed to create firestore client, using in-memory store with mock data",
				"error", err)
			mem := store.NewMemoryStore()
			mem.SeedMockCandidates()
			return mem
		}
		return store.NewFirestoreStore(client)

	default:
		return store.NewMemoryStore()
	}
}

// buildCascade assembles the ordered extraction strategies. The vision tier
// is only present when Gemini is configured.
func buildCascade(cfg *config.Config, aiClient *ai.Client, logger *slog.Logger) *extraction.Cascade {
	runner := extraction.ExecRunner{}
	ocrCfg := extraction.OCRConfig{
		Pdftoppm:  cfg.OCR.Pdftoppm,
		Tesseract: cfg.OCR.Tesseract,
		Language:  cfg.OCR.Language,
		DPI:       cfg.OCR.DPI,
		MaxPages:  cfg.OCR.MaxPages,
	}

	strategies := []extraction.Strategy{
		extraction.PDFTextStrategy{},
		&extraction.PdftotextStrategy{Binary: cfg.OCR.Pdftotext, Runner: runner},
		extraction.RawScrapeStrategy{},
		&extraction.OCRStrategy{Config: ocrCfg, Runner: runner},
	}
	if aiClient != nil {
		strategies = append(strategies, &extraction.VisionStrategy{
			Transcriber: aiClient,
			Config:      ocrCfg,
			Runner:      runner,
		})
	}
	return extraction.NewCascade(logger, strategies...)
}
