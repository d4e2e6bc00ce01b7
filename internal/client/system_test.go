package client_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fpp-cli/internal/client"
)

func TestConnectPopulatesSnapshot(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/system/info", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"HostName":"fpp1","Mode":"player"}`)
	})

	c, _ := newTestClient(t, mux)
	api, err := client.Connect(c.Config, discardLogger())
	require.NoError(t, err)
	require.NotNil(t, api.Info)

	assert.Equal(t, "fpp1", api.Info.HostName)
	assert.Equal(t, "player", api.Info.Mode)
	// Fields absent from the response stay at their zero value.
	assert.Empty(t, api.Info.Version)
	assert.Empty(t, api.Info.Branch)
	assert.Nil(t, api.Info.Utilization)
	assert.Empty(t, api.Info.Extra)
}

func TestConnectKeepsUnknownKeys(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/system/info", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"HostName":"fpp1","channelRanges":"0-512","backgroundColor":"#c01015"}`)
	})

	c, _ := newTestClient(t, mux)
	api, err := client.Connect(c.Config, discardLogger())
	require.NoError(t, err)

	assert.Equal(t, "fpp1", api.Info.HostName)
	require.Len(t, api.Info.Extra, 2)
	assert.JSONEq(t, `"0-512"`, string(api.Info.Extra["channelRanges"]))
	assert.NotContains(t, api.Info.Extra, "HostName")
}

func TestConnectPropagatesTransportError(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"down"}`, http.StatusInternalServerError)
	}))

	_, err := client.Connect(c.Config, discardLogger())
	require.Error(t, err)
	// The transport error surfaces unchanged through Connect.
	assert.Equal(t, "500: Internal Server Error", err.Error())
}

func TestGetSystemInfoUtilization(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/system/info", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"HostName":"fpp1",
			"Utilization":{
				"CPU":12.5,"Memory":39.1,"Uptime":"3 days",
				"Disk":{"Media":{"Free":1024,"Total":4096}}
			},
			"IPs":["192.168.1.50"]
		}`)
	})

	c, _ := newTestClient(t, mux)
	info, err := c.GetSystemInfo()
	require.NoError(t, err)

	require.NotNil(t, info.Utilization)
	assert.Equal(t, 12.5, info.Utilization.CPU)
	assert.Equal(t, int64(1024), info.Utilization.Disk["Media"].Free)
	assert.Equal(t, []string{"192.168.1.50"}, info.IPs)
}

func TestGetStatus(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/fppd/status", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"fppd":"running","status":1,"status_name":"playing",
			"mode":2,"mode_name":"player","volume":70,
			"seconds_played":"12","seconds_remaining":"48",
			"current_playlist":{"playlist":"MainShow","index":"1","count":"9"}
		}`)
	})

	c, _ := newTestClient(t, mux)
	status, err := c.GetStatus()
	require.NoError(t, err)

	assert.Equal(t, "playing", status.StatusName)
	assert.Equal(t, 70, status.Volume)
	assert.Equal(t, "MainShow", status.CurrentPlaylist.Playlist)
	assert.Equal(t, "12", status.SecondsPlayed)
}

func TestConnectTimeoutIsTerminal(t *testing.T) {
	c := client.New(client.ClientConfig{
		// TEST-NET address, nothing routes there.
		Host:    "192.0.2.1",
		Timeout: 50 * time.Millisecond,
	}, discardLogger())

	start := time.Now()
	_, err := client.Connect(c.Config, discardLogger())
	require.Error(t, err)
	assert.Equal(t, "Request failed", err.Error())
	assert.Less(t, time.Since(start), 5*time.Second)
}
