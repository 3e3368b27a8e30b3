package main

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"io"
	"log"
	"net/http"
	"os"
)

const ExitCodeMainError = 1

func RunApp() error {
	gin.SetMode(gin.ReleaseMode)

	config, err := LoadConfig(os.Getenv("CONFIG_FILEPATH"))
	if err != nil {
		return err
	}

	serviceContainer, err := BuildServiceContainer(config)
	if err != nil {
		return err
	}

	serviceContainer.WebhookDispatcher.Start()
	defer serviceContainer.WebhookDispatcher.Close()
	defer serviceContainer.Storage.Close()

	log.Printf("listening on %s, %s storage at %s", config.Server.Listen, config.Database.Driver, config.Database.Path)

	return http.ListenAndServe(config.Server.Listen, serviceContainer.Router)
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
		return ExitCodeMainError
	}

	return 0
}
