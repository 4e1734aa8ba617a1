package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"

	"github.com/algogallery/goapi/base/ctx"
	"github.com/algogallery/goapi/base/goroutine"
	"github.com/algogallery/goapi/base/log"
	bValidator "github.com/algogallery/goapi/base/validator"
	mmiddleware "github.com/algogallery/goapi/middleware"
	"github.com/algogallery/goapi/service/cache/provider/primitive"
	"github.com/algogallery/goapi/service/indexer"
	collection_delivery "github.com/algogallery/goapi/stores/collection/delivery/http"
	collection_usecase "github.com/algogallery/goapi/stores/collection/usecase"
	favorites_delivery "github.com/algogallery/goapi/stores/favorites/delivery/http"
	favorites_repository "github.com/algogallery/goapi/stores/favorites/repository"
	favorites_usecase "github.com/algogallery/goapi/stores/favorites/usecase"
	gallery_delivery "github.com/algogallery/goapi/stores/gallery/delivery/http"
	gallery_usecase "github.com/algogallery/goapi/stores/gallery/usecase"
	metadata_usecase "github.com/algogallery/goapi/stores/metadata/usecase"
	webresource_delivery "github.com/algogallery/goapi/stores/webresource/delivery/http"
	webresource_repository "github.com/algogallery/goapi/stores/webresource/repository"
)

func init() {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(`infra/configs/config.yaml`)
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init indexer client
	context.Info("init indexer client")
	indexerClient := indexer.NewClient(&indexer.ClientCfg{
		HttpClient: http.Client{},
		BaseUrl:    viper.GetString("indexer.baseUrl"),
		Timeout:    viper.GetDuration("indexer.timeout"),
	})

	metadataCache := primitive.NewPrimitive("arc69", viper.GetInt("metadata.cacheSizeMB"))

	metadataUsecase := metadata_usecase.New(&metadata_usecase.MetadataUseCaseCfg{
		Indexer:       indexerClient,
		Cache:         metadataCache,
		CacheTtl:      viper.GetDuration("metadata.cacheTtl"),
		NoteScanLimit: viper.GetInt("metadata.noteScanLimit"),
		IpfsGateway:   viper.GetString("ipfs.gateway"),
	})

	favoritesRepo := favorites_repository.NewBlobRepo(viper.GetString("favorites.path"))
	favoritesUsecase, err := favorites_usecase.New(context, &favorites_usecase.FavoritesUseCaseCfg{
		Repo: favoritesRepo,
	})
	if err != nil {
		context.WithField("err", err).Panic("failed to init favorites")
	}

	galleryUsecase := gallery_usecase.New(&gallery_usecase.GalleryUseCaseCfg{
		Indexer:     indexerClient,
		Metadata:    metadataUsecase,
		Favorites:   favoritesUsecase,
		PageSize:    viper.GetInt("indexer.pageSize"),
		Concurrency: viper.GetInt("indexer.concurrency"),
	})

	collectionUsecase := collection_usecase.New()

	webResourceReader := webresource_repository.NewHttpReaderRepo(
		http.Client{},
		viper.GetDuration("webresource.timeout"),
		nil,
	)

	gallery_delivery.New(e, galleryUsecase)
	favorites_delivery.New(e, favoritesUsecase)
	collection_delivery.New(e, collectionUsecase)
	webresource_delivery.New(e, webResourceReader, metadataUsecase)

	e.GET("/healthcheck", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{"status": "ok"})
	})

	goroutine.RecoverableGo(func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	})

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
