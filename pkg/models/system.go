package models

import "encoding/json"

// SystemInfo is the identity snapshot returned by GET system/info. It is
// populated once at connect time and never mutated afterwards. Fields the
// device omits stay at their zero value.
type SystemInfo struct {
	HostName        string       `json:"HostName"`
	HostDescription string       `json:"HostDescription"`
	Platform        string       `json:"Platform"`
	SubPlatform     string       `json:"SubPlatform"`
	Variant         string       `json:"Variant"`
	Version         string       `json:"Version"`
	Branch          string       `json:"Branch"`
	Mode            string       `json:"Mode"`
	OSVersion       string       `json:"OSVersion"`
	OSRelease       string       `json:"OSRelease"`
	UUID            string       `json:"uuid"`
	IPs             []string     `json:"IPs"`
	Utilization     *Utilization `json:"Utilization"`

	// Extra keeps response keys the schema does not name, so newer FPP
	// releases stay inspectable without a client update.
	Extra map[string]json.RawMessage `json:"-"`
}

// Utilization is the system load block of the system/info response.
type Utilization struct {
	CPU    float64              `json:"CPU"`
	Memory float64              `json:"Memory"`
	Uptime string               `json:"Uptime"`
	Disk   map[string]DiskUsage `json:"Disk"`
}

// DiskUsage reports free and total space for one volume, in bytes.
type DiskUsage struct {
	Free  int64 `json:"Free"`
	Total int64 `json:"Total"`
}

// Keys named by the SystemInfo schema; everything else lands in Extra.
var systemInfoKeys = []string{
	"HostName", "HostDescription", "Platform", "SubPlatform", "Variant",
	"Version", "Branch", "Mode", "OSVersion", "OSRelease", "uuid", "IPs",
	"Utilization",
}

func (s *SystemInfo) UnmarshalJSON(b []byte) error {
	type plain SystemInfo
	var known plain
	if err := json.Unmarshal(b, &known); err != nil {
		return err
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(b, &all); err != nil {
		return err
	}
	for _, k := range systemInfoKeys {
		delete(all, k)
	}
	if len(all) > 0 {
		known.Extra = all
	}
	*s = SystemInfo(known)
	return nil
}
