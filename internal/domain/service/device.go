package service

import (
	"time"

	"github.com/turtacn/h5sign/internal/infrastructure/crypto"
	"github.com/turtacn/h5sign/pkg/constants"
	"github.com/turtacn/h5sign/pkg/utils"
)

const (
	deviceHdid   = "JM9F1ywUPwflvMIpYPok0tt5k9kW4ArJEU3lfLhxBqw="
	unknownBssid = "dW5hbw93bq=="
	epCipherType = 5
	epVersion    = "1.2.0"
)

// Device is a handset model reported in the ep payload.
type Device struct {
	Brand string
	Model string
}

var devices = []Device{
	{Brand: "Xiaomi", Model: "M2012K11AC"},
	{Brand: "Xiaomi", Model: "2201123C"},
	{Brand: "Redmi", Model: "22081212C"},
	{Brand: "HUAWEI", Model: "NOH-AN00"},
	{Brand: "HUAWEI", Model: "ELS-AN00"},
	{Brand: "HONOR", Model: "PGT-AN10"},
	{Brand: "OPPO", Model: "PEEM00"},
	{Brand: "OPPO", Model: "PGBM10"},
	{Brand: "vivo", Model: "V2055A"},
	{Brand: "vivo", Model: "V2229A"},
	{Brand: "OnePlus", Model: "LE2120"},
	{Brand: "samsung", Model: "SM-G9910"},
	{Brand: "meizu", Model: "MEIZU 18"},
}

var (
	osVersions = []string{"10", "11", "12", "13"}
	screens    = []string{"640x1136", "750x1334", "1080x1920", "2297*1080"}
)

type epCipher struct {
	DModel    string `json:"d_model"`
	WifiBssid string `json:"wifiBssid"`
	OsVersion string `json:"osVersion"`
	DBrand    string `json:"d_brand"`
	Screen    string `json:"screen"`
	UUID      string `json:"uuid"`
	Aid       string `json:"aid"`
	Openudid  string `json:"openudid"`
	Area      string `json:"area"`
}

type epPayload struct {
	Hdid       string   `json:"hdid"`
	Ts         int64    `json:"ts"`
	Ridx       int      `json:"ridx"`
	Cipher     epCipher `json:"cipher"`
	Ciphertype int      `json:"ciphertype"`
	Version    string   `json:"version"`
	Appname    string   `json:"appname"`
}

// DevicePayloadGenerator builds the ep field of a sign request.
type DevicePayloadGenerator struct {
	rand  utils.Rand
	clock Clock
}

// NewDevicePayloadGenerator creates a generator.
func NewDevicePayloadGenerator(r utils.Rand, clock Clock) *DevicePayloadGenerator {
	if clock == nil {
		clock = time.Now
	}
	return &DevicePayloadGenerator{rand: r, clock: clock}
}

// Generate returns the ep JSON for uuid with a random device.
func (g *DevicePayloadGenerator) Generate(uuid string) (string, error) {
	d := utils.PickOne(g.rand, devices)
	area := utils.RandomID(g.rand, 2, utils.DictNumber) + "_" +
		utils.RandomID(g.rand, 4, utils.DictNumber) + "_" +
		utils.RandomID(g.rand, 5, utils.DictNumber) + "_" +
		utils.RandomID(g.rand, 5, utils.DictNumber)
	enc := func(s string) string { return crypto.MustEncodeDefault([]byte(s)) }
	return utils.ToJSON(epPayload{
		Hdid: deviceHdid,
		Ts:   g.clock().UnixMilli(),
		Ridx: -1,
		Cipher: epCipher{
			DModel:    enc(d.Model),
			WifiBssid: unknownBssid,
			OsVersion: enc(utils.PickOne(g.rand, osVersions)),
			DBrand:    enc(d.Brand),
			Screen:    enc(utils.PickOne(g.rand, screens)),
			UUID:      enc(uuid),
			Aid:       enc(uuid),
			Openudid:  enc(uuid),
			Area:      enc(area),
		},
		Ciphertype: epCipherType,
		Version:    epVersion,
		Appname:    constants.DefaultAppName,
	})
}
