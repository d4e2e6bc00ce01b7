package client

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"fpp-cli/pkg/models"
)

const (
	systemInfoPath   = "system/info"
	playerStatusPath = "fppd/status"
)

// Connect builds a client and queries the player once for its identity.
// Errors from the transport propagate unchanged. The snapshot is never
// refreshed; connect again for current data.
func Connect(cfg ClientConfig, logger *slog.Logger) (*FPPClient, error) {
	c := New(cfg, logger)

	c.log.Info("querying for Falcon Player", "host", cfg.Host, "path", systemInfoPath)

	info, err := c.GetSystemInfo()
	if err != nil {
		return nil, err
	}
	c.Info = info

	c.log.Info("Falcon Player found", "host", cfg.Host,
		"hostname", info.HostName, "version", info.Version,
		"platform", info.Platform, "mode", info.Mode)

	return c, nil
}

// GetSystemInfo fetches a fresh system/info snapshot without touching the
// one taken at connect time.
func (c *FPPClient) GetSystemInfo() (*models.SystemInfo, error) {
	res, err := c.Execute(http.MethodGet, systemInfoPath, nil, nil)
	if err != nil {
		return nil, err
	}

	var info models.SystemInfo
	if err := json.Unmarshal(res.Raw, &info); err != nil {
		return nil, &models.APIError{Kind: models.ErrDecode, Message: models.MsgInvalidJSON, Err: err}
	}
	return &info, nil
}

// GetStatus fetches the current playback state from fppd.
func (c *FPPClient) GetStatus() (*models.PlayerStatus, error) {
	res, err := c.Execute(http.MethodGet, playerStatusPath, nil, nil)
	if err != nil {
		return nil, err
	}

	var status models.PlayerStatus
	if err := json.Unmarshal(res.Raw, &status); err != nil {
		return nil, &models.APIError{Kind: models.ErrDecode, Message: models.MsgInvalidJSON, Err: err}
	}
	return &status, nil
}
