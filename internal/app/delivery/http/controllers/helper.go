package controllers

import (
	"double-optin-service/internal/app/config"
	"time"
)

func requestTimeout(internalConfig *config.InternalConfig) time.Duration {
	if internalConfig == nil || internalConfig.App.RequestTimeoutInSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
}
