package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"songart"
	"songart/config"
	"songart/internal/application/usecase"
	"songart/internal/infrastructure/database"
	"songart/internal/infrastructure/minio"
	"songart/internal/infrastructure/replicate"
	"songart/internal/infrastructure/shortlink"
	"songart/internal/presentation"
	"songart/internal/presentation/handler"
	"songart/internal/presentation/middleware"
	"songart/internal/presentation/web"
	"songart/pkg/logger"
)

// corsConfig opens the API to any origin. X-Filename must be allowed or
// browser preflights reject the raw-body upload path.
func corsConfig() echoMiddleware.CORSConfig {
	return echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength,
			presentation.FilenameKey},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}
}

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running songart", "version", songart.StringVersion())

	minIOClient, err := minio.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}
	minIOUploader := minio.NewUploader(minIOClient, &cfg.MinIOUploader)
	minIOLister := minio.NewLister(minIOClient, &cfg.MinIOLister)
	minIOPresigner := minio.NewPresigner(minIOClient, &cfg.MinIOPresigner)

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}
	dbWriter := database.NewMediaWriter(db)
	dbLister := database.NewMediaLister(db)

	linkStore, err := shortlink.NewStore(cfg.ShortLink)
	if err != nil {
		ExitOnError(err)
	}

	replicateClient, err := replicate.New(cfg.Replicate)
	if err != nil {
		ExitOnError(err)
	}

	uploader := usecase.NewUploader(minIOUploader, minIOPresigner, dbWriter)
	lister := usecase.NewLister(minIOLister)
	catalog := usecase.NewCatalog(dbLister)
	generator := usecase.NewGenerator(replicateClient)
	linker := usecase.NewLinker(linkStore)
	compositor := usecase.NewCompositor()

	uploadHandler := handler.NewUploadHandler(uploader)
	filesHandler := handler.NewFilesHandler(lister, catalog)
	generateHandler := handler.NewGenerateHandler(generator)
	compositeHandler := handler.NewCompositeHandler(compositor)
	linkHandler := handler.NewLinkHandler(linker)

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(corsConfig()))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("50M"))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))
	e.Use(middleware.TraceID())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/api/files", filesHandler.HandleList)
	e.GET("/api/media/recent", filesHandler.HandleRecent)
	e.GET("/api/upload", uploadHandler.HandleUploadTarget)
	e.POST("/api/upload", uploadHandler.HandleUpload)
	e.POST("/api/generate-art", generateHandler.HandleGenerateArt)
	e.POST("/api/generate", generateHandler.HandleGenerateQR)
	e.POST("/api/composite", compositeHandler.HandleComposite)
	e.POST("/p", linkHandler.HandleCreatePlayer)
	e.GET("/p/:"+presentation.IDParam, linkHandler.HandleGetPlayer)
	e.POST("/pl", linkHandler.HandleCreatePlaylist)
	e.GET("/pl/:"+presentation.IDParam, linkHandler.HandleGetPlaylist)

	pages, err := web.NewPages(linker, minIOClient.PublicURL(""))
	if err != nil {
		ExitOnError(err)
	}
	pages.Register(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.Server.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}

	if err := db.Stop(); err != nil {
		logger.Warn("database shutdown failed", "err", err)
	}
	if err := linkStore.Close(); err != nil {
		logger.Warn("shortlink store shutdown failed", "err", err)
	}
}
