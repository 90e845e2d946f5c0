package crc

import (
	"sort"
	"strconv"
	"strings"
)

func hexValue(str string) Value { return MustParseValue(str) }

// presets is the catalog of published CRC variants, grouped by width family.
var presets = [...]Definition{
	{Name: "CRC-8/SMBUS", Width: 8, Poly: hexValue("0x07"), Init: hexValue("0x00"), XorOut: hexValue("0x00"), Check: hexValue("0xf4")},
	{Name: "CRC-8/MAXIM-DOW", Width: 8, Poly: hexValue("0x31"), Init: hexValue("0x00"), RefIn: true, RefOut: true, XorOut: hexValue("0x00"), Check: hexValue("0xa1")},
	{Name: "CRC-8/CDMA2000", Width: 8, Poly: hexValue("0x9b"), Init: hexValue("0xff"), XorOut: hexValue("0x00"), Check: hexValue("0xda")},
	{Name: "CRC-8/DARC", Width: 8, Poly: hexValue("0x39"), Init: hexValue("0x00"), RefIn: true, RefOut: true, XorOut: hexValue("0x00"), Check: hexValue("0x15")},
	{Name: "CRC-8/DVB-S2", Width: 8, Poly: hexValue("0xd5"), Init: hexValue("0x00"), XorOut: hexValue("0x00"), Check: hexValue("0xbc")},
	{Name: "CRC-8/TECH-3250", Width: 8, Poly: hexValue("0x1d"), Init: hexValue("0xff"), RefIn: true, RefOut: true, XorOut: hexValue("0x00"), Check: hexValue("0x97")},
	{Name: "CRC-8/I-CODE", Width: 8, Poly: hexValue("0x1d"), Init: hexValue("0xfd"), XorOut: hexValue("0x00"), Check: hexValue("0x7e")},
	{Name: "CRC-8/I-432-1", Width: 8, Poly: hexValue("0x07"), Init: hexValue("0x00"), XorOut: hexValue("0x55"), Check: hexValue("0xa1")},
	{Name: "CRC-8/ROHC", Width: 8, Poly: hexValue("0x07"), Init: hexValue("0xff"), RefIn: true, RefOut: true, XorOut: hexValue("0x00"), Check: hexValue("0xd0")},
	{Name: "CRC-8/WCDMA", Width: 8, Poly: hexValue("0x9b"), Init: hexValue("0x00"), RefIn: true, RefOut: true, XorOut: hexValue("0x00"), Check: hexValue("0x25")},
	{Name: "CRC-8/AUTOSAR", Width: 8, Poly: hexValue("0x2f"), Init: hexValue("0xff"), XorOut: hexValue("0xff"), Check: hexValue("0xdf")},
	{Name: "CRC-8/BLUETOOTH", Width: 8, Poly: hexValue("0xa7"), Init: hexValue("0x00"), RefIn: true, RefOut: true, XorOut: hexValue("0x00"), Check: hexValue("0x26")},
	{Name: "CRC-8/GSM-A", Width: 8, Poly: hexValue("0x1d"), Init: hexValue("0x00"), XorOut: hexValue("0x00"), Check: hexValue("0x37")},
	{Name: "CRC-8/GSM-B", Width: 8, Poly: hexValue("0x49"), Init: hexValue("0x00"), XorOut: hexValue("0xff"), Check: hexValue("0x94")},
	{Name: "CRC-8/LTE", Width: 8, Poly: hexValue("0x9b"), Init: hexValue("0x00"), XorOut: hexValue("0x00"), Check: hexValue("0xea")},
	{Name: "CRC-8/NRSC-5", Width: 8, Poly: hexValue("0x31"), Init: hexValue("0xff"), XorOut: hexValue("0x00"), Check: hexValue("0xf7")},
	{Name: "CRC-8/OPENSAFETY", Width: 8, Poly: hexValue("0x2f"), Init: hexValue("0x00"), XorOut: hexValue("0x00"), Check: hexValue("0x3e")},
	{Name: "CRC-8/SAE-J1850", Width: 8, Poly: hexValue("0x1d"), Init: hexValue("0xff"), XorOut: hexValue("0xff"), Check: hexValue("0x4b")},
	{Name: "CRC-8/MIFARE-MAD", Width: 8, Poly: hexValue("0x1d"), Init: hexValue("0xc7"), XorOut: hexValue("0x00"), Check: hexValue("0x99")},
	{Name: "CRC-8/HITAG", Width: 8, Poly: hexValue("0x1d"), Init: hexValue("0xff"), XorOut: hexValue("0x00"), Check: hexValue("0xb4")},

	{Name: "CRC-10/ATM", Width: 10, Poly: hexValue("0x233"), Init: hexValue("0x000"), XorOut: hexValue("0x000"), Check: hexValue("0x199")},
	{Name: "CRC-10/CDMA2000", Width: 10, Poly: hexValue("0x3d9"), Init: hexValue("0x3ff"), XorOut: hexValue("0x000"), Check: hexValue("0x233")},
	{Name: "CRC-10/GSM", Width: 10, Poly: hexValue("0x175"), Init: hexValue("0x000"), XorOut: hexValue("0x3ff"), Check: hexValue("0x12a")},

	{Name: "CRC-11/FLEXRAY", Width: 11, Poly: hexValue("0x385"), Init: hexValue("0x01a"), XorOut: hexValue("0x000"), Check: hexValue("0x5a3")},
	{Name: "CRC-11/UMTS", Width: 11, Poly: hexValue("0x307"), Init: hexValue("0x000"), XorOut: hexValue("0x000"), Check: hexValue("0x061")},

	{Name: "CRC-12/DECT", Width: 12, Poly: hexValue("0x80f"), Init: hexValue("0x000"), XorOut: hexValue("0x000"), Check: hexValue("0xf5b")},
	{Name: "CRC-12/CDMA2000", Width: 12, Poly: hexValue("0xf13"), Init: hexValue("0xfff"), XorOut: hexValue("0x000"), Check: hexValue("0xd4d")},
	{Name: "CRC-12/GSM", Width: 12, Poly: hexValue("0xd31"), Init: hexValue("0x000"), XorOut: hexValue("0xfff"), Check: hexValue("0xb34")},
	{Name: "CRC-12/UMTS", Width: 12, Poly: hexValue("0x80f"), Init: hexValue("0x000"), RefOut: true, XorOut: hexValue("0x000"), Check: hexValue("0xdaf")},

	{Name: "CRC-13/BBC", Width: 13, Poly: hexValue("0x1cf5"), Init: hexValue("0x0000"), XorOut: hexValue("0x0000"), Check: hexValue("0x04fa")},

	{Name: "CRC-14/DARC", Width: 14, Poly: hexValue("0x0805"), Init: hexValue("0x0000"), RefIn: true, RefOut: true, XorOut: hexValue("0x0000"), Check: hexValue("0x082d")},
	{Name: "CRC-14/GSM", Width: 14, Poly: hexValue("0x202d"), Init: hexValue("0x0000"), XorOut: hexValue("0x3fff"), Check: hexValue("0x30ae")},

	{Name: "CRC-15/CAN", Width: 15, Poly: hexValue("0x4599"), Init: hexValue("0x0000"), XorOut: hexValue("0x0000"), Check: hexValue("0x059e")},
	{Name: "CRC-15/MPT1327", Width: 15, Poly: hexValue("0x6815"), Init: hexValue("0x0000"), XorOut: hexValue("0x0001"), Check: hexValue("0x2566")},

	{Name: "CRC-16/ARC", Width: 16, Poly: hexValue("0x8005"), Init: hexValue("0x0000"), RefIn: true, RefOut: true, XorOut: hexValue("0x0000"), Check: hexValue("0xbb3d")},
	{Name: "CRC-16/CDMA2000", Width: 16, Poly: hexValue("0xc867"), Init: hexValue("0xffff"), XorOut: hexValue("0x0000"), Check: hexValue("0x4c06")},
	{Name: "CRC-16/CMS", Width: 16, Poly: hexValue("0x8005"), Init: hexValue("0xffff"), XorOut: hexValue("0x0000"), Check: hexValue("0xaee7")},
	{Name: "CRC-16/DDS-110", Width: 16, Poly: hexValue("0x8005"), Init: hexValue("0x800d"), XorOut: hexValue("0x0000"), Check: hexValue("0x9ecf")},
	{Name: "CRC-16/DECT-R", Width: 16, Poly: hexValue("0x0589"), Init: hexValue("0x0000"), XorOut: hexValue("0x0001"), Check: hexValue("0x007e")},
	{Name: "CRC-16/DECT-X", Width: 16, Poly: hexValue("0x0589"), Init: hexValue("0x0000"), XorOut: hexValue("0x0000"), Check: hexValue("0x007f")},
	{Name: "CRC-16/DNP", Width: 16, Poly: hexValue("0x3d65"), Init: hexValue("0x0000"), RefIn: true, RefOut: true, XorOut: hexValue("0xffff"), Check: hexValue("0xea82")},
	{Name: "CRC-16/EN-13757", Width: 16, Poly: hexValue("0x3d65"), Init: hexValue("0x0000"), XorOut: hexValue("0xffff"), Check: hexValue("0xc2b7")},
	{Name: "CRC-16/GENIBUS", Width: 16, Poly: hexValue("0x1021"), Init: hexValue("0xffff"), XorOut: hexValue("0xffff"), Check: hexValue("0xd64e")},
	{Name: "CRC-16/GSM", Width: 16, Poly: hexValue("0x1021"), Init: hexValue("0x0000"), XorOut: hexValue("0xffff"), Check: hexValue("0xce3c")},
	{Name: "CRC-16/IBM-3740", Width: 16, Poly: hexValue("0x1021"), Init: hexValue("0xffff"), XorOut: hexValue("0x0000"), Check: hexValue("0x29b1")},
	{Name: "CRC-16/IBM-SDLC", Width: 16, Poly: hexValue("0x1021"), Init: hexValue("0xffff"), RefIn: true, RefOut: true, XorOut: hexValue("0xffff"), Check: hexValue("0x906e")},
	{Name: "CRC-16/ISO-IEC-14443-3-A", Width: 16, Poly: hexValue("0x1021"), Init: hexValue("0xc6c6"), RefIn: true, RefOut: true, XorOut: hexValue("0x0000"), Check: hexValue("0xbf05")},
	{Name: "CRC-16/KERMIT", Width: 16, Poly: hexValue("0x1021"), Init: hexValue("0x0000"), RefIn: true, RefOut: true, XorOut: hexValue("0x0000"), Check: hexValue("0x2189")},
	{Name: "CRC-16/LJ1200", Width: 16, Poly: hexValue("0x6f63"), Init: hexValue("0x0000"), XorOut: hexValue("0x0000"), Check: hexValue("0xbdf4")},
	{Name: "CRC-16/M17", Width: 16, Poly: hexValue("0x5935"), Init: hexValue("0xffff"), XorOut: hexValue("0x0000"), Check: hexValue("0x772b")},
	{Name: "CRC-16/MAXIM-DOW", Width: 16, Poly: hexValue("0x8005"), Init: hexValue("0x0000"), RefIn: true, RefOut: true, XorOut: hexValue("0xffff"), Check: hexValue("0x44c2")},
	{Name: "CRC-16/MCRF4XX", Width: 16, Poly: hexValue("0x1021"), Init: hexValue("0xffff"), RefIn: true, RefOut: true, XorOut: hexValue("0x0000"), Check: hexValue("0x6f91")},
	{Name: "CRC-16/MODBUS", Width: 16, Poly: hexValue("0x8005"), Init: hexValue("0xffff"), RefIn: true, RefOut: true, XorOut: hexValue("0x0000"), Check: hexValue("0x4b37")},
	{Name: "CRC-16/NRSC-5", Width: 16, Poly: hexValue("0x080b"), Init: hexValue("0xffff"), RefIn: true, RefOut: true, XorOut: hexValue("0x0000"), Check: hexValue("0xa066")},
	{Name: "CRC-16/OPENSAFETY-A", Width: 16, Poly: hexValue("0x5935"), Init: hexValue("0x0000"), XorOut: hexValue("0x0000"), Check: hexValue("0x5d38")},
	{Name: "CRC-16/OPENSAFETY-B", Width: 16, Poly: hexValue("0x755b"), Init: hexValue("0x0000"), XorOut: hexValue("0x0000"), Check: hexValue("0x20fe")},
	{Name: "CRC-16/PROFIBUS", Width: 16, Poly: hexValue("0x1dcf"), Init: hexValue("0xffff"), XorOut: hexValue("0xffff"), Check: hexValue("0xa819")},
	{Name: "CRC-16/RIELLO", Width: 16, Poly: hexValue("0x1021"), Init: hexValue("0xb2aa"), RefIn: true, RefOut: true, XorOut: hexValue("0x0000"), Check: hexValue("0x63d0")},
	{Name: "CRC-16/SPI-FUJITSU", Width: 16, Poly: hexValue("0x1021"), Init: hexValue("0x1d0f"), XorOut: hexValue("0x0000"), Check: hexValue("0xe5cc")},
	{Name: "CRC-16/T10-DIF", Width: 16, Poly: hexValue("0x8bb7"), Init: hexValue("0x0000"), XorOut: hexValue("0x0000"), Check: hexValue("0xd0db")},
	{Name: "CRC-16/TELEDISK", Width: 16, Poly: hexValue("0xa097"), Init: hexValue("0x0000"), XorOut: hexValue("0x0000"), Check: hexValue("0x0fb3")},
	{Name: "CRC-16/TMS37157", Width: 16, Poly: hexValue("0x1021"), Init: hexValue("0x89ec"), RefIn: true, RefOut: true, XorOut: hexValue("0x0000"), Check: hexValue("0x26b1")},
	{Name: "CRC-16/UMTS", Width: 16, Poly: hexValue("0x8005"), Init: hexValue("0x0000"), XorOut: hexValue("0x0000"), Check: hexValue("0xfee8")},
	{Name: "CRC-16/USB", Width: 16, Poly: hexValue("0x8005"), Init: hexValue("0xffff"), RefIn: true, RefOut: true, XorOut: hexValue("0xffff"), Check: hexValue("0xb4c8")},
	{Name: "CRC-16/XMODEM", Width: 16, Poly: hexValue("0x1021"), Init: hexValue("0x0000"), XorOut: hexValue("0x0000"), Check: hexValue("0x31c3")},

	{Name: "CRC-17/CAN-FD", Width: 17, Poly: hexValue("0x1685b"), Init: hexValue("0x00000"), XorOut: hexValue("0x00000"), Check: hexValue("0x04f03")},

	{Name: "CRC-21/CAN-FD", Width: 21, Poly: hexValue("0x102899"), Init: hexValue("0x000000"), XorOut: hexValue("0x000000"), Check: hexValue("0x0ed841")},

	{Name: "CRC-24/OPENPGP", Width: 24, Poly: hexValue("0x864cfb"), Init: hexValue("0xb704ce"), XorOut: hexValue("0x000000"), Check: hexValue("0x21cf02")},
	{Name: "CRC-24/BLE", Width: 24, Poly: hexValue("0x00065b"), Init: hexValue("0x555555"), RefIn: true, RefOut: true, XorOut: hexValue("0x000000"), Check: hexValue("0xc25a56")},
	{Name: "CRC-24/FLEXRAY-A", Width: 24, Poly: hexValue("0x5d6dcb"), Init: hexValue("0xfedcba"), XorOut: hexValue("0x000000"), Check: hexValue("0x7979bd")},
	{Name: "CRC-24/FLEXRAY-B", Width: 24, Poly: hexValue("0x5d6dcb"), Init: hexValue("0xabcdef"), XorOut: hexValue("0x000000"), Check: hexValue("0x1f23b8")},
	{Name: "CRC-24/INTERLAKEN", Width: 24, Poly: hexValue("0x328b63"), Init: hexValue("0xffffff"), XorOut: hexValue("0xffffff"), Check: hexValue("0xb4f3e6")},
	{Name: "CRC-24/LTE-A", Width: 24, Poly: hexValue("0x864cfb"), Init: hexValue("0x000000"), XorOut: hexValue("0x000000"), Check: hexValue("0xcde703")},
	{Name: "CRC-24/LTE-B", Width: 24, Poly: hexValue("0x800063"), Init: hexValue("0x000000"), XorOut: hexValue("0x000000"), Check: hexValue("0x23ef52")},
	{Name: "CRC-24/OS-9", Width: 24, Poly: hexValue("0x800063"), Init: hexValue("0xffffff"), XorOut: hexValue("0xffffff"), Check: hexValue("0x200fa5")},

	{Name: "CRC-30/CDMA", Width: 30, Poly: hexValue("0x2030b9c7"), Init: hexValue("0x3fffffff"), XorOut: hexValue("0x3fffffff"), Check: hexValue("0x04c34abf")},

	{Name: "CRC-31/PHILIPS", Width: 31, Poly: hexValue("0x04c11db7"), Init: hexValue("0x7fffffff"), XorOut: hexValue("0x7fffffff"), Check: hexValue("0x0ce9e46c")},

	{Name: "CRC-32/ISO-HDLC", Width: 32, Poly: hexValue("0x04c11db7"), Init: hexValue("0xffffffff"), RefIn: true, RefOut: true, XorOut: hexValue("0xffffffff"), Check: hexValue("0xcbf43926")},
	{Name: "CRC-32/ISCSI", Width: 32, Poly: hexValue("0x1edc6f41"), Init: hexValue("0xffffffff"), RefIn: true, RefOut: true, XorOut: hexValue("0xffffffff"), Check: hexValue("0xe3069283")},
	{Name: "CRC-32/BZIP2", Width: 32, Poly: hexValue("0x04c11db7"), Init: hexValue("0xffffffff"), XorOut: hexValue("0xffffffff"), Check: hexValue("0xfc891918")},
	{Name: "CRC-32/MPEG-2", Width: 32, Poly: hexValue("0x04c11db7"), Init: hexValue("0xffffffff"), XorOut: hexValue("0x00000000"), Check: hexValue("0x0376e6e7")},
	{Name: "CRC-32/CKSUM", Width: 32, Poly: hexValue("0x04c11db7"), Init: hexValue("0x00000000"), XorOut: hexValue("0xffffffff"), Check: hexValue("0x765e7680")},
	{Name: "CRC-32/JAMCRC", Width: 32, Poly: hexValue("0x04c11db7"), Init: hexValue("0xffffffff"), RefIn: true, RefOut: true, XorOut: hexValue("0x00000000"), Check: hexValue("0x340bc6d9")},
	{Name: "CRC-32/XFER", Width: 32, Poly: hexValue("0x000000af"), Init: hexValue("0x00000000"), XorOut: hexValue("0x00000000"), Check: hexValue("0xbd0be338")},
	{Name: "CRC-32/AIXM", Width: 32, Poly: hexValue("0x814141ab"), Init: hexValue("0x00000000"), XorOut: hexValue("0x00000000"), Check: hexValue("0x3010bf7f")},
	{Name: "CRC-32/AUTOSAR", Width: 32, Poly: hexValue("0xf4acfb13"), Init: hexValue("0xffffffff"), RefIn: true, RefOut: true, XorOut: hexValue("0xffffffff"), Check: hexValue("0x1697d06a")},
	{Name: "CRC-32/BASE91-D", Width: 32, Poly: hexValue("0xa833982b"), Init: hexValue("0xffffffff"), RefIn: true, RefOut: true, XorOut: hexValue("0xffffffff"), Check: hexValue("0x87315576")},
	{Name: "CRC-32/CD-ROM-EDC", Width: 32, Poly: hexValue("0x8001801b"), Init: hexValue("0x00000000"), RefIn: true, RefOut: true, XorOut: hexValue("0x00000000"), Check: hexValue("0x6ec2edc4")},
	{Name: "CRC-32/MEF", Width: 32, Poly: hexValue("0x741b8cd7"), Init: hexValue("0xffffffff"), RefIn: true, RefOut: true, XorOut: hexValue("0x00000000"), Check: hexValue("0xd2c22f51")},

	{Name: "CRC-40/GSM", Width: 40, Poly: hexValue("0x0004820009"), Init: hexValue("0x0000000000"), XorOut: hexValue("0xffffffffff"), Check: hexValue("0xd4164fc646")},

	{Name: "CRC-64/ECMA-182", Width: 64, Poly: hexValue("0x42f0e1eba9ea3693"), Init: hexValue("0x0000000000000000"), XorOut: hexValue("0x0000000000000000"), Check: hexValue("0x6c40df5f0b497347")},
	{Name: "CRC-64/GO-ISO", Width: 64, Poly: hexValue("0x000000000000001b"), Init: hexValue("0xffffffffffffffff"), RefIn: true, RefOut: true, XorOut: hexValue("0xffffffffffffffff"), Check: hexValue("0xb90956c775a41001")},
	{Name: "CRC-64/WE", Width: 64, Poly: hexValue("0x42f0e1eba9ea3693"), Init: hexValue("0xffffffffffffffff"), XorOut: hexValue("0xffffffffffffffff"), Check: hexValue("0x62ec59e3f1a4f00a")},
	{Name: "CRC-64/XZ", Width: 64, Poly: hexValue("0x42f0e1eba9ea3693"), Init: hexValue("0xffffffffffffffff"), RefIn: true, RefOut: true, XorOut: hexValue("0xffffffffffffffff"), Check: hexValue("0x995dc9bbdf1939fa")},
	{Name: "CRC-64/MS", Width: 64, Poly: hexValue("0x259c84cba6426349"), Init: hexValue("0xffffffffffffffff"), RefIn: true, RefOut: true, XorOut: hexValue("0x0000000000000000"), Check: hexValue("0x75d4b74f024eceea")},
	{Name: "CRC-64/REDIS", Width: 64, Poly: hexValue("0xad93d23594c935a9"), Init: hexValue("0x0000000000000000"), RefIn: true, RefOut: true, XorOut: hexValue("0x0000000000000000"), Check: hexValue("0xe9c6d914c4b8d9ca")},
	{Name: "CRC-64/NVME", Width: 64, Poly: hexValue("0xad93d23594c93659"), Init: hexValue("0xffffffffffffffff"), RefIn: true, RefOut: true, XorOut: hexValue("0xffffffffffffffff"), Check: hexValue("0xae8b14860a799888")},

	{Name: "CRC-82/DARC", Width: 82, Poly: hexValue("0x0308c0111011401440411"), Init: hexValue("0x000000000000000000000"), RefIn: true, RefOut: true, XorOut: hexValue("0x000000000000000000000"), Check: hexValue("0x09ea83f625023801fd612")},
}

// presetAliases maps alternate names to the canonical names in presets.
var presetAliases = map[string]string{
	"CRC-8":              "CRC-8/SMBUS",
	"CRC-8/MAXIM":        "CRC-8/MAXIM-DOW",
	"DOW-CRC":            "CRC-8/MAXIM-DOW",
	"CRC-8/AES":          "CRC-8/TECH-3250",
	"CRC-8/EBU":          "CRC-8/TECH-3250",
	"CRC-8/ITU":          "CRC-8/I-432-1",
	"CRC-10":             "CRC-10/ATM",
	"CRC-10/I-610":       "CRC-10/ATM",
	"CRC-11":             "CRC-11/FLEXRAY",
	"CRC-12/3GPP":        "CRC-12/UMTS",
	"CRC-15":             "CRC-15/CAN",
	"CRC-16":             "CRC-16/ARC",
	"CRC-16/LHA":         "CRC-16/ARC",
	"CRC-IBM":            "CRC-16/ARC",
	"CRC-16/CCITT-FALSE": "CRC-16/IBM-3740",
	"CRC-16/AUTOSAR":     "CRC-16/IBM-3740",
	"X-25":               "CRC-16/IBM-SDLC",
	"CRC-16/X-25":        "CRC-16/IBM-SDLC",
	"CRC-16/ISO-HDLC":    "CRC-16/IBM-SDLC",
	"CRC-B":              "CRC-16/IBM-SDLC",
	"KERMIT":             "CRC-16/KERMIT",
	"CRC-16/CCITT":       "CRC-16/KERMIT",
	"CRC-16/CCITT-TRUE":  "CRC-16/KERMIT",
	"CRC-16/V-41-LSB":    "CRC-16/KERMIT",
	"XMODEM":             "CRC-16/XMODEM",
	"ZMODEM":             "CRC-16/XMODEM",
	"CRC-16/ACORN":       "CRC-16/XMODEM",
	"CRC-16/LTE":         "CRC-16/XMODEM",
	"CRC-16/V-41-MSB":    "CRC-16/XMODEM",
	"CRC-16/BUYPASS":     "CRC-16/UMTS",
	"CRC-16/VERIFONE":    "CRC-16/UMTS",
	"CRC-16/AUG-CCITT":   "CRC-16/SPI-FUJITSU",
	"CRC-16/MAXIM":       "CRC-16/MAXIM-DOW",
	"CRC-16/DARC":        "CRC-16/GENIBUS",
	"CRC-16/EPC":         "CRC-16/GENIBUS",
	"CRC-16/I-CODE":      "CRC-16/GENIBUS",
	"CRC-A":              "CRC-16/ISO-IEC-14443-3-A",
	"MODBUS":             "CRC-16/MODBUS",
	"CRC-24":             "CRC-24/OPENPGP",
	"CRC-32":             "CRC-32/ISO-HDLC",
	"CRC-32/ADCCP":       "CRC-32/ISO-HDLC",
	"CRC-32/V-42":        "CRC-32/ISO-HDLC",
	"CRC-32/XZ":          "CRC-32/ISO-HDLC",
	"PKZIP":              "CRC-32/ISO-HDLC",
	"CRC-32C":            "CRC-32/ISCSI",
	"CRC-32/BASE91-C":    "CRC-32/ISCSI",
	"CRC-32/CASTAGNOLI":  "CRC-32/ISCSI",
	"CRC-32/INTERLAKEN":  "CRC-32/ISCSI",
	"CRC-32/AAL5":        "CRC-32/BZIP2",
	"CRC-32/DECT-B":      "CRC-32/BZIP2",
	"B-CRC-32":           "CRC-32/BZIP2",
	"CRC-32/POSIX":       "CRC-32/CKSUM",
	"CKSUM":              "CRC-32/CKSUM",
	"CRC-32Q":            "CRC-32/AIXM",
	"CRC-32D":            "CRC-32/BASE91-D",
	"JAMCRC":             "CRC-32/JAMCRC",
	"XFER":               "CRC-32/XFER",
	"CRC-64":             "CRC-64/ECMA-182",
	"CRC-64/ISO":         "CRC-64/GO-ISO",
	"CRC-64/GO-ECMA":     "CRC-64/XZ",
}

var (
	presetIndex    map[string]int
	presetFamilies []uint
)

func init() {
	presetIndex = make(map[string]int, len(presets)+len(presetAliases))
	seen := make(map[uint]struct{}, 32)
	for index, def := range presets {
		presetIndex[strings.ToUpper(def.Name)] = index
		if _, found := seen[def.Width]; !found {
			seen[def.Width] = struct{}{}
			presetFamilies = append(presetFamilies, def.Width)
		}
	}
	for alias, name := range presetAliases {
		index, found := presetIndex[strings.ToUpper(name)]
		if !found {
			panic("alias " + alias + " names unknown preset " + name)
		}
		presetIndex[strings.ToUpper(alias)] = index
	}
	sort.Slice(presetFamilies, func(i, j int) bool { return presetFamilies[i] < presetFamilies[j] })
}

// NumPresets returns the number of Definitions in the catalog.
func NumPresets() int {
	return len(presets)
}

// Presets returns a copy of every Definition in the catalog.
func Presets() []Definition {
	out := make([]Definition, len(presets))
	copy(out, presets[:])
	return out
}

// Families returns the distinct widths present in the catalog, in ascending
// order.
func Families() []uint {
	out := make([]uint, len(presetFamilies))
	copy(out, presetFamilies)
	return out
}

// PresetsByFamily returns the Definitions in the catalog of the given width.
func PresetsByFamily(width uint) []Definition {
	var out []Definition
	for _, def := range presets {
		if def.Width == width {
			out = append(out, def)
		}
	}
	return out
}

// Aliases returns a copy of the alias table, mapping each alternate name to a
// canonical preset name.
func Aliases() map[string]string {
	out := make(map[string]string, len(presetAliases))
	for alias, name := range presetAliases {
		out[alias] = name
	}
	return out
}

// LookupPreset finds a preset by canonical name or alias.  Matching is
// case-insensitive.
func LookupPreset(name string) (Definition, bool) {
	index, found := presetIndex[strings.ToUpper(strings.TrimSpace(name))]
	if !found {
		return Definition{}, false
	}
	return presets[index], true
}

// LookupFamilyPreset finds a preset of the given width.  name may be a
// canonical name, an alias, or the part of a canonical name after the slash,
// so that (16, "XMODEM") and (16, "CRC-16/XMODEM") are the same preset.
func LookupFamilyPreset(width uint, name string) (Definition, bool) {
	name = strings.TrimSpace(name)
	if def, found := LookupPreset(name); found && def.Width == width {
		return def, true
	}
	if def, found := LookupPreset(familyPrefix(width) + name); found && def.Width == width {
		return def, true
	}
	return Definition{}, false
}

func familyPrefix(width uint) string {
	return "CRC-" + strconv.FormatUint(uint64(width), 10) + "/"
}
