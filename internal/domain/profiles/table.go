package profiles

import "github.com/turtacn/h5sign/internal/domain/models"

// Shared sub-objects. Several profiles reference the same value; none derive from another.
var (
	baseInfoApp02 = models.TokenBaseInfo{Magic: "tk", Version: "02", Platform: "a", Expires: "41", Producer: "l"}
	baseInfoApp03 = models.TokenBaseInfo{Magic: "tk", Version: "03", Platform: "a", Expires: "41", Producer: "l"}
	baseInfoApp04 = models.TokenBaseInfo{Magic: "tk", Version: "04", Platform: "a", Expires: "41", Producer: "l"}
	baseInfoWeb02 = models.TokenBaseInfo{Magic: "tk", Version: "02", Platform: "w", Expires: "41", Producer: "l"}
	baseInfoWeb03 = models.TokenBaseInfo{Magic: "tk", Version: "03", Platform: "w", Expires: "41", Producer: "l"}
	baseInfoWeb04 = models.TokenBaseInfo{Magic: "tk", Version: "04", Platform: "w", Expires: "41", Producer: "l"}
	baseInfoWeb05 = models.TokenBaseInfo{Magic: "tk", Version: "05", Platform: "w", Expires: "41", Producer: "l"}

	alphabet1  = "WVUTSRQPONMLKJIHGFEDCBA-_9876543210zyxwvutsrqponmlkjihgfedcbaZYX"
	alphabet2  = "rqponmlkjihgfedcbaZYXWVUTSRQPONMLKJIHGFEDCBA-_9876543210zyxwvuts"
	alphabet3  = "ZYXWVUTSRQPONMLKJIHGFEDCBA-_9876543210zyxwvutsrqponmlkjihgfedcba"
	alphabet4  = "kjihgfedcbaZYXWVUTSRQPONMLKJIHGFEDCBA-_9876543210zyxwvutsrqponml"
	alphabet5  = "baZYXWVUTSRQPONMLKJIHGFEDCBA-_9876543210zyxwvutsrqponmlkjihgfedc"
	alphabet6  = "RQPONMLKJIHGFEDCBA-_9876543210zyxwvutsrqponmlkjihgfedcbaZYXWVUTS"
	alphabet7  = "jihgfedcbaZYXWVUTSRQPONMLKJIHGFEDCBA-_9876543210zyxwvutsrqponmlk"
	alphabet8  = "dcbaZYXWVUTSRQPONMLKJIHGFEDCBA-_9876543210zyxwvutsrqponmlkjihgfe"
	alphabet9  = "cbaZYXWVUTSRQPONMLKJIHGFEDCBA-_9876543210zyxwvutsrqponmlkjihgfed"
	alphabet10 = "XWVUTSRQPONMLKJIHGFEDCBA-_9876543210zyxwvutsrqponmlkjihgfedcbaZY"
	alphabet11 = "QPONMLKJIHGFEDCBA-_9876543210zyxwvutsrqponmlkjihgfedcbaZYXWVUTSR"
	alphabet12 = "fedcbaZYXWVUTSRQPONMLKJIHGFEDCBA-_9876543210zyxwvutsrqponmlkjihg"
	alphabet13 = "LKJIHGFEDCBA-_9876543210zyxwvutsrqponmlkjihgfedcbaZYXWVUTSRQPONM"
	alphabet14 = "nmlkjihgfedcbaZYXWVUTSRQPONMLKJIHGFEDCBA-_9876543210zyxwvutsrqpo"
	alphabet15 = "YXWVUTSRQPONMLKJIHGFEDCBA-_9876543210zyxwvutsrqponmlkjihgfedcbaZ"
	alphabet16 = "210zyxwvutsrqponmlkjihgfedcbaZYXWVUTSRQPONMLKJIHGFEDCBA-_9876543"
	alphabet17 = "ihgfedcbaZYXWVUTSRQPONMLKJIHGFEDCBA-_9876543210zyxwvutsrqponmlkj"
	alphabet18 = "aZYXWVUTSRQPONMLKJIHGFEDCBA-_9876543210zyxwvutsrqponmlkjihgfedcb"
	alphabet19 = "hgfedcbaZYXWVUTSRQPONMLKJIHGFEDCBA-_9876543210zyxwvutsrqponmlkji"
	alphabet20 = "MLKJIHGFEDCBA-_9876543210zyxwvutsrqponmlkjihgfedcbaZYXWVUTSRQPON"
	alphabet21 = "A-_9876543210zyxwvutsrqponmlkjihgfedcbaZYXWVUTSRQPONMLKJIHGFEDCB"
	alphabet22 = "543210zyxwvutsrqponmlkjihgfedcbaZYXWVUTSRQPONMLKJIHGFEDCBA-_9876"
	alphabet23 = "ponmlkjihgfedcbaZYXWVUTSRQPONMLKJIHGFEDCBA-_9876543210zyxwvutsrq"
	alphabet24 = "TSRQPONMLKJIHGFEDCBA-_9876543210zyxwvutsrqponmlkjihgfedcbaZYXWVU"
	alphabet25 = "EDCBA-_9876543210zyxwvutsrqponmlkjihgfedcbaZYXWVUTSRQPONMLKJIHGF"
	alphabet26 = "HGFEDCBA-_9876543210zyxwvutsrqponmlkjihgfedcbaZYXWVUTSRQPONMLKJI"
	alphabet27 = "VUTSRQPONMLKJIHGFEDCBA-_9876543210zyxwvutsrqponmlkjihgfedcbaZYXW"
	alphabet28 = "9876543210zyxwvutsrqponmlkjihgfedcbaZYXWVUTSRQPONMLKJIHGFEDCBA-_"
	alphabet29 = "10zyxwvutsrqponmlkjihgfedcbaZYXWVUTSRQPONMLKJIHGFEDCBA-_98765432"
	alphabet30 = "DCBA-_9876543210zyxwvutsrqponmlkjihgfedcbaZYXWVUTSRQPONMLKJIHGFE"
	alphabet31 = "xwvutsrqponmlkjihgfedcbaZYXWVUTSRQPONMLKJIHGFEDCBA-_9876543210zy"
	alphabet32 = "IHGFEDCBA-_9876543210zyxwvutsrqponmlkjihgfedcbaZYXWVUTSRQPONMLKJ"

	dictTokenV4 = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	drawTokenV5 = &models.SecretDraw{Dict: "0123456789abcdefghijklmnopqrstuvwxyzABCDOPQRSTUVWXYZ_-", Index: 5, Magic: "1"}
)

func intPtr(v int) *int { return &v }

// published lists every built-in profile in release order.
var published = []models.VersionProfile{
	{
		Version:          "4.1.0",
		WireVersion:      "4.1",
		SignAlgorithm:    models.SignSHA256Wrap,
		TokenGeneration:  models.TokenGeneration1,
		Env:              models.EnvSpec{Secret: "HL4|FW#Chc3#q?0)", Fv: "v0.1.6", RandomLength: 10},
		VisitKey:         models.VisitKeySpec{Seed: "uct6d0jhqw", SelectLength: 6, RandomLength: 9, ConvertLength: 14},
		DefaultKeyExtend: "2475%+",
		ExtendDateStr:    "04",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb02,
			Cipher:   models.TokenCipher{Secret1: "3+1&G!q2t7n5", Prefix: "55", Secret2: "8)[CJ?.rW0Bs2(89"},
		},
	},
	{
		Version:          "4.2.0",
		WireVersion:      "4.2",
		SignAlgorithm:    models.SignSHA256Wrap,
		TokenGeneration:  models.TokenGeneration1,
		Env:              models.EnvSpec{Secret: "DNiHi703B0&17hh1", Bu1: "0.1.9", Fv: "h5_file_v4.2.0", RandomLength: 10},
		VisitKey:         models.VisitKeySpec{Seed: "6d0jhqw3pa", SelectLength: 4, RandomLength: 11, ConvertLength: 14},
		DefaultKeyExtend: "9>5*t5",
		ExtendDateStr:    "74",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb02,
			Cipher:   models.TokenCipher{Secret1: "qem7+)g%Dhw5", Prefix: "z7", Secret2: "x6e@RoHi$Fgy7!5k"},
		},
	},
	{
		Version:          "4.3.1",
		WireVersion:      "4.3",
		SignAlgorithm:    models.SignSHA256Wrap,
		TokenGeneration:  models.TokenGeneration1,
		Env:              models.EnvSpec{Secret: "&d74&yWoV.EYbWbZ", Bu1: "0.1.7", Fv: "h5_file_v4.3.1", RandomLength: 10},
		VisitKey:         models.VisitKeySpec{Seed: "kl9i1uct6d", SelectLength: 3, RandomLength: 12, ConvertLength: 10},
		DefaultKeyExtend: "Z=<J_2",
		ExtendDateStr:    "22",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb02,
			Cipher:   models.TokenCipher{Secret1: "+WzD<U36rlTf", Prefix: "0J", Secret2: "ML0Qq&DS81pP/an@"},
		},
	},
	{
		Version:          "4.3.3",
		WireVersion:      "4.3",
		SignAlgorithm:    models.SignSHA256Wrap,
		TokenGeneration:  models.TokenGeneration1,
		Env:              models.EnvSpec{Secret: "&d74&yWoV.EYbWbZ", Bu1: "0.1.7", Fv: "h5_file_v4.3.3", RandomLength: 10},
		VisitKey:         models.VisitKeySpec{Seed: "kl9i1uct6d", SelectLength: 3, RandomLength: 12, ConvertLength: 10},
		DefaultKeyExtend: "Z=<J_2",
		ExtendDateStr:    "22",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb02,
			Cipher:   models.TokenCipher{Secret1: "+WzD<U36rlTf", Prefix: "0J", Secret2: "ML0Qq&DS81pP/an@"},
		},
	},
	{
		Version:          "4.4.0",
		WireVersion:      "4.4",
		SignAlgorithm:    models.SignHMACSHA256Wrap,
		TokenGeneration:  models.TokenGeneration1,
		Env:              models.EnvSpec{Secret: "r1T.6Vinpb.k+/a)", Fv: "v_lite_f_4.4.0", RandomLength: 12},
		VisitKey:         models.VisitKeySpec{Seed: "1uct6d0jhq", SelectLength: 4, RandomLength: 11, ConvertLength: 8},
		DefaultKeyExtend: "qV!+A!",
		ExtendDateStr:    "88",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb02,
			Cipher:   models.TokenCipher{Secret1: "HiO81-Ei89DH", Prefix: "(>", Secret2: "eHL4|FW#Chc3#q?0"},
		},
	},
	{
		Version:          "4.7.1",
		WireVersion:      "4.7",
		SignAlgorithm:    models.SignMD5Wrap,
		TokenGeneration:  models.TokenGeneration1,
		Env:              models.EnvSpec{Secret: "_M6Y?dvfN40VMF[X", Bu1: "0.1.5", Fv: "h5_file_v4.7.1", RandomLength: 12},
		VisitKey:         models.VisitKeySpec{Seed: "1uct6d0jhq", SelectLength: 5, RandomLength: 10, ConvertLength: 15},
		DefaultKeyExtend: "hh1BNE",
		ExtendDateStr:    "97",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb03,
			Cipher:   models.TokenCipher{Secret1: "8[8I[]d?960w", Prefix: "cw", Secret2: "XsiRvI<7|NC-1g5X"},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:         "23k@X!",
			Map:          alphabet1,
			KeyReverse:   true,
			ConvertIndex: models.ConvertIndex{HMAC: intPtr(16)},
		},
	},
	{
		Version:          "4.7.2",
		WireVersion:      "4.7",
		SignAlgorithm:    models.SignMD5Wrap,
		TokenGeneration:  models.TokenGeneration1,
		Env:              models.EnvSpec{Secret: "_M6Y?dvfN40VMF[X", Bu1: "0.1.5", Fv: "h5_file_v4.7.2", RandomLength: 12},
		VisitKey:         models.VisitKeySpec{Seed: "1uct6d0jhq", SelectLength: 5, RandomLength: 10, ConvertLength: 15},
		DefaultKeyExtend: "87n8!-",
		ExtendDateStr:    "07",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb03,
			Cipher:   models.TokenCipher{Secret1: "K3rOqML0Qq&D", Prefix: "C2", Secret2: "=F)?n7@]OFX62bT5"},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:         "JdM3|5",
			Map:          alphabet1,
			KeyReverse:   true,
			ConvertIndex: models.ConvertIndex{HMAC: intPtr(7)},
		},
	},
	{
		Version:          "4.7.3",
		WireVersion:      "4.7",
		SignAlgorithm:    models.SignMD5Wrap,
		TokenGeneration:  models.TokenGeneration1,
		Env:              models.EnvSpec{Secret: "_M6Y?dvfN40VMF[X", Bu1: "0.1.5", Fv: "h5_file_v4.7.3", RandomLength: 12},
		VisitKey:         models.VisitKeySpec{Seed: "1uct6d0jhq", SelectLength: 5, RandomLength: 10, ConvertLength: 15},
		DefaultKeyExtend: "kEjxS-",
		ExtendDateStr:    "78",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb03,
			Cipher:   models.TokenCipher{Secret1: "A._/XV*bOm%!", Prefix: "dl", Secret2: "qV!+A!tmuU#Z7/2_"},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:         "=LN6GO",
			Map:          alphabet1,
			KeyReverse:   true,
			ConvertIndex: models.ConvertIndex{HMAC: intPtr(3)},
		},
	},
	{
		Version:          "4.7.4",
		WireVersion:      "4.7",
		SignAlgorithm:    models.SignMD5Wrap,
		TokenGeneration:  models.TokenGeneration1,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Secret: "_M6Y?dvfN40VMF[X", Bu1: "0.1.5", Fv: "h5_file_v4.7.4", RandomLength: 11},
		VisitKey:         models.VisitKeySpec{Seed: "1uct6d0jhq", SelectLength: 5, RandomLength: 10, ConvertLength: 15},
		DefaultKeyExtend: "Mp(2C1",
		ExtendDateStr:    "47",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb03,
			Cipher:   models.TokenCipher{Secret1: "4*iK&33Z|+6)", Prefix: "FX", Secret2: "zR>U5mz40W99&8sg"},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:         "7n5<G*",
			Map:          alphabet1,
			KeyReverse:   true,
			ConvertIndex: models.ConvertIndex{HMAC: intPtr(5)},
		},
	},
	{
		Version:          "4.8.1",
		WireVersion:      "4.8",
		SignAlgorithm:    models.SignHMACSHA256Wrap,
		TokenGeneration:  models.TokenGeneration2,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v4.8.1", RandomLength: 11},
		VisitKey:         models.VisitKeySpec{Seed: "2mn87xbyof", SelectLength: 6, RandomLength: 9, ConvertLength: 14},
		DefaultKeyExtend: "JdM3|5",
		ExtendDateStr:    "36",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb04,
			Cipher:   models.TokenCipher{Secret1: "DbIAgz71j04v", Prefix: "mT", Draw: &models.SecretDraw{Dict: dictTokenV4, Index: 5, Magic: "z"}},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:         "7hh1BN",
			Map:          alphabet1,
			ConvertIndex: models.ConvertIndex{Hex: intPtr(6), HMAC: intPtr(5)},
		},
	},
	{
		Version:          "4.8.2",
		WireVersion:      "4.8",
		SignAlgorithm:    models.SignHMACSHA256Wrap,
		TokenGeneration:  models.TokenGeneration2,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v4.8.2", RandomLength: 11},
		VisitKey:         models.VisitKeySpec{Seed: "2mn87xbyof", SelectLength: 6, RandomLength: 9, ConvertLength: 14},
		DefaultKeyExtend: "0?6i#p",
		ExtendDateStr:    "84",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb04,
			Cipher:   models.TokenCipher{Secret1: "=9CM=q#Qr6-8", Prefix: "Dv", Draw: &models.SecretDraw{Dict: dictTokenV4, Index: 5, Magic: "q"}},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:         "Cp.jbF",
			Map:          alphabet1,
			ConvertIndex: models.ConvertIndex{Hex: intPtr(4), HMAC: intPtr(14)},
		},
	},
	{
		Version:          "4.9.1",
		WireVersion:      "4.9",
		SignAlgorithm:    models.SignSHA256Wrap,
		TokenGeneration:  models.TokenGeneration2,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v4.9.1", RandomLength: 12},
		VisitKey:         models.VisitKeySpec{Seed: "z4rekl9i1u", SelectLength: 4, RandomLength: 11, ConvertLength: 8},
		DefaultKeyExtend: "SDV&6(",
		ExtendDateStr:    "07",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb04,
			Cipher:   models.TokenCipher{Secret1: "qodOHbSV1ik2", Prefix: "ba", Draw: &models.SecretDraw{Dict: dictTokenV4, Index: 5, Magic: "b"}},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:         "x38rG0",
			Map:          alphabet2,
			ConvertIndex: models.ConvertIndex{Hex: intPtr(6), HMAC: intPtr(9)},
		},
	},
	{
		Version:          "4.9.2",
		WireVersion:      "4.9",
		SignAlgorithm:    models.SignSHA256Wrap,
		TokenGeneration:  models.TokenGeneration2,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v4.9.2", RandomLength: 12},
		VisitKey:         models.VisitKeySpec{Seed: "z4rekl9i1u", SelectLength: 4, RandomLength: 11, ConvertLength: 8},
		DefaultKeyExtend: "/Xi]Ti",
		ExtendDateStr:    "89",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb04,
			Cipher:   models.TokenCipher{Secret1: "Tr0tY-F*crDf", Prefix: "id", Draw: &models.SecretDraw{Dict: dictTokenV4, Index: 5, Magic: "-"}},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:         "8I8)[C",
			Map:          alphabet2,
			ConvertIndex: models.ConvertIndex{Hex: intPtr(5), HMAC: intPtr(14)},
		},
	},
	{
		Version:          "4.9.3",
		WireVersion:      "4.9",
		SignAlgorithm:    models.SignSHA256Wrap,
		TokenGeneration:  models.TokenGeneration2,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v4.9.3", RandomLength: 12},
		VisitKey:         models.VisitKeySpec{Seed: "z4rekl9i1u", SelectLength: 4, RandomLength: 11, ConvertLength: 8},
		DefaultKeyExtend: "pTQEqV",
		ExtendDateStr:    "77",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb04,
			Cipher:   models.TokenCipher{Secret1: "UnHWNe%n]ro/", Prefix: "R,", Draw: &models.SecretDraw{Dict: dictTokenV4, Index: 5, Magic: "e"}},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:         "83qem7",
			Map:          alphabet2,
			ConvertIndex: models.ConvertIndex{Hex: intPtr(3), HMAC: intPtr(14)},
		},
	},
	{
		Version:          "4.9.4",
		WireVersion:      "4.9",
		SignAlgorithm:    models.SignSHA256Wrap,
		TokenGeneration:  models.TokenGeneration2,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v4.9.4", RandomLength: 12},
		VisitKey:         models.VisitKeySpec{Seed: "z4rekl9i1u", SelectLength: 4, RandomLength: 11, ConvertLength: 8},
		DefaultKeyExtend: "A!2|cP",
		ExtendDateStr:    "28",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb04,
			Cipher:   models.TokenCipher{Secret1: "cVH1SHb$xuK+", Prefix: "c%", Draw: &models.SecretDraw{Dict: dictTokenV4, Index: 5, Magic: "H"}},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:         "Z7/2_7",
			Map:          alphabet2,
			ConvertIndex: models.ConvertIndex{Hex: intPtr(1), HMAC: intPtr(13)},
		},
	},
	{
		Version:          "4.9.5",
		WireVersion:      "4.9",
		SignAlgorithm:    models.SignSHA256Wrap,
		TokenGeneration:  models.TokenGeneration2,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v4.9.5", RandomLength: 12},
		VisitKey:         models.VisitKeySpec{Seed: "z4rekl9i1u", SelectLength: 4, RandomLength: 11, ConvertLength: 8},
		DefaultKeyExtend: "b7mP0d",
		ExtendDateStr:    "69",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb04,
			Cipher:   models.TokenCipher{Secret1: "74.jqb8960t7", Prefix: "&]", Draw: &models.SecretDraw{Dict: dictTokenV4, Index: 5, Magic: "b"}},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:         "BTR(2K",
			Map:          alphabet2,
			ConvertIndex: models.ConvertIndex{Hex: intPtr(9), HMAC: intPtr(1)},
		},
	},
	{
		Version:          "4.9.6",
		WireVersion:      "4.9",
		SignAlgorithm:    models.SignSHA256Wrap,
		TokenGeneration:  models.TokenGeneration2,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v4.9.6", RandomLength: 12},
		VisitKey:         models.VisitKeySpec{Seed: "z4rekl9i1u", SelectLength: 4, RandomLength: 11, ConvertLength: 8},
		DefaultKeyExtend: "q00?6i",
		ExtendDateStr:    "08",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb04,
			Cipher:   models.TokenCipher{Secret1: "3L%G6Oz1LeTY", Prefix: "2F", Draw: &models.SecretDraw{Dict: dictTokenV4, Index: 5, Magic: "O"}},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:         "d74&yW",
			Map:          alphabet2,
			ConvertIndex: models.ConvertIndex{Hex: intPtr(0), HMAC: intPtr(9)},
		},
	},
	{
		Version:          "4.9.7",
		WireVersion:      "4.9",
		SignAlgorithm:    models.SignSHA256Wrap,
		TokenGeneration:  models.TokenGeneration2,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v4.9.7", RandomLength: 12},
		VisitKey:         models.VisitKeySpec{Seed: "z4rekl9i1u", SelectLength: 4, RandomLength: 11, ConvertLength: 8},
		DefaultKeyExtend: "]d?960",
		ExtendDateStr:    "88",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb04,
			Cipher:   models.TokenCipher{Secret1: "RvI<7|NC-1g5", Prefix: "89", Draw: &models.SecretDraw{Dict: dictTokenV4, Index: 5, Magic: "|"}},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:         "IQz9WS",
			Map:          alphabet2,
			ConvertIndex: models.ConvertIndex{Hex: intPtr(3), HMAC: intPtr(1)},
		},
	},
	{
		Version:          "5.0.0",
		WireVersion:      "5.0",
		SignAlgorithm:    models.SignMD5Wrap,
		TokenGeneration:  models.TokenGeneration2,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.0.0", RandomLength: 12},
		VisitKey:         models.VisitKeySpec{Seed: "qw3pa2mn87", SelectLength: 5, RandomLength: 10, ConvertLength: 14},
		DefaultKeyExtend: "tO(X0Y",
		ExtendDateStr:    "76",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb04,
			Cipher:   models.TokenCipher{Secret1: "/#RfL268b74U", Prefix: "Z*", Draw: &models.SecretDraw{Dict: dictTokenV4, Index: 5, Magic: "2"}},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "zI6fJ>",
			Map:              alphabet3,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(2), HMAC: intPtr(3)},
			TransformMessage: &models.TransformMessage{Map: alphabet4, Segments: 13, Multiplier: 29},
		},
	},
	{
		Version:          "5.0.1",
		WireVersion:      "5.0",
		SignAlgorithm:    models.SignMD5Wrap,
		TokenGeneration:  models.TokenGeneration2,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.0.1", RandomLength: 13},
		VisitKey:         models.VisitKeySpec{Seed: "qw3pa2mn87", SelectLength: 5, RandomLength: 10, ConvertLength: 14},
		DefaultKeyExtend: "7wcba&",
		ExtendDateStr:    "36",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb04,
			Cipher:   models.TokenCipher{Secret1: "=9pStUH7B64/", Prefix: "m2", Draw: &models.SecretDraw{Dict: dictTokenV4, Index: 5, Magic: "U"}},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "rxn&50",
			Map:              alphabet3,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(4), HMAC: intPtr(4)},
			TransformMessage: &models.TransformMessage{Map: alphabet5, Segments: 4, Multiplier: 18},
		},
	},
	{
		Version:          "5.0.2",
		WireVersion:      "5.0",
		SignAlgorithm:    models.SignMD5Wrap,
		TokenGeneration:  models.TokenGeneration2,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.0.2", RandomLength: 10},
		VisitKey:         models.VisitKeySpec{Seed: "qw3pa2mn87", SelectLength: 5, RandomLength: 10, ConvertLength: 14},
		DefaultKeyExtend: "21pyb9",
		ExtendDateStr:    "46",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb04,
			Cipher:   models.TokenCipher{Secret1: "c(8?@!FJDNiH", Prefix: "=6", Draw: &models.SecretDraw{Dict: dictTokenV4, Index: 5, Magic: "!"}},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "$SM04X",
			Map:              alphabet3,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(0), HMAC: intPtr(12)},
			TransformMessage: &models.TransformMessage{Map: alphabet6, Segments: 5, Multiplier: 24},
		},
	},
	{
		Version:          "5.0.3",
		WireVersion:      "5.0",
		SignAlgorithm:    models.SignMD5Wrap,
		TokenGeneration:  models.TokenGeneration2,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.0.3", RandomLength: 10},
		VisitKey:         models.VisitKeySpec{Seed: "qw3pa2mn87", SelectLength: 5, RandomLength: 10, ConvertLength: 14},
		DefaultKeyExtend: "q%@S95",
		ExtendDateStr:    "72",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb04,
			Cipher:   models.TokenCipher{Secret1: "R(2Kiv@u.M2U", Prefix: "Un", Draw: &models.SecretDraw{Dict: dictTokenV4, Index: 5, Magic: "v"}},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "fJ>pil",
			Map:              alphabet3,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(6), HMAC: intPtr(4)},
			TransformMessage: &models.TransformMessage{Map: alphabet7, Segments: 4, Multiplier: 6},
		},
	},
	{
		Version:          "5.0.4",
		WireVersion:      "5.0",
		SignAlgorithm:    models.SignMD5Wrap,
		TokenGeneration:  models.TokenGeneration2,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.0.4", RandomLength: 11},
		VisitKey:         models.VisitKeySpec{Seed: "qw3pa2mn87", SelectLength: 5, RandomLength: 10, ConvertLength: 14},
		DefaultKeyExtend: "#Qr6-8",
		ExtendDateStr:    "69",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb04,
			Cipher:   models.TokenCipher{Secret1: "%Io1mj_wq%@S", Prefix: "U=", Draw: &models.SecretDraw{Dict: dictTokenV4, Index: 5, Magic: "j"}},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "D8<NCk",
			Map:              alphabet3,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(7), HMAC: intPtr(6)},
			TransformMessage: &models.TransformMessage{Map: alphabet8, Segments: 6, Multiplier: 25},
		},
	},
	{
		Version:          "5.0.5",
		WireVersion:      "5.0",
		SignAlgorithm:    models.SignMD5Wrap,
		TokenGeneration:  models.TokenGeneration2,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.0.5", RandomLength: 9},
		VisitKey:         models.VisitKeySpec{Seed: "qw3pa2mn87", SelectLength: 5, RandomLength: 10, ConvertLength: 14},
		DefaultKeyExtend: "dU0jS0",
		ExtendDateStr:    "60",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb04,
			Cipher:   models.TokenCipher{Secret1: "&|@K3rOqML0Q", Prefix: "LE", Draw: &models.SecretDraw{Dict: dictTokenV4, Index: 5, Magic: "r"}},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "5Wk3$6",
			Map:              alphabet3,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(0), HMAC: intPtr(5)},
			TransformMessage: &models.TransformMessage{Map: alphabet9, Segments: 7, Multiplier: 6},
		},
	},
	{
		Version:          "5.0.6",
		WireVersion:      "5.0",
		SignAlgorithm:    models.SignMD5Wrap,
		TokenGeneration:  models.TokenGeneration2,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.0.6", RandomLength: 12},
		VisitKey:         models.VisitKeySpec{Seed: "qw3pa2mn87", SelectLength: 5, RandomLength: 10, ConvertLength: 14},
		DefaultKeyExtend: "crDf.u",
		ExtendDateStr:    "22",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb04,
			Cipher:   models.TokenCipher{Secret1: "DbIAgz71j04v", Prefix: "nJ", Draw: &models.SecretDraw{Dict: dictTokenV4, Index: 5, Magic: "z"}},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "R]dev/",
			Map:              alphabet3,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(5), HMAC: intPtr(7)},
			TransformMessage: &models.TransformMessage{Map: alphabet3, Segments: 7, Multiplier: 6},
		},
	},
	{
		Version:          "5.0.7",
		WireVersion:      "5.0",
		SignAlgorithm:    models.SignMD5Wrap,
		TokenGeneration:  models.TokenGeneration2,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.0.7", RandomLength: 9},
		VisitKey:         models.VisitKeySpec{Seed: "qw3pa2mn87", SelectLength: 5, RandomLength: 10, ConvertLength: 14},
		DefaultKeyExtend: "[8I[]d",
		ExtendDateStr:    "36",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb04,
			Cipher:   models.TokenCipher{Secret1: "yb9jU671lO85", Prefix: "4K", Draw: &models.SecretDraw{Dict: dictTokenV4, Index: 5, Magic: "6"}},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "0Y1/Mv",
			Map:              alphabet3,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(1), HMAC: intPtr(15)},
			TransformMessage: &models.TransformMessage{Map: alphabet10, Segments: 6, Multiplier: 5},
		},
	},
	{
		Version:          "5.0.8",
		WireVersion:      "5.0",
		SignAlgorithm:    models.SignMD5Wrap,
		TokenGeneration:  models.TokenGeneration2,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.0.8", RandomLength: 11},
		VisitKey:         models.VisitKeySpec{Seed: "qw3pa2mn87", SelectLength: 5, RandomLength: 10, ConvertLength: 14},
		DefaultKeyExtend: "+6)]v$",
		ExtendDateStr:    "61",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb04,
			Cipher:   models.TokenCipher{Secret1: "Ue<d1?SPKw5H", Prefix: "SV", Draw: &models.SecretDraw{Dict: dictTokenV4, Index: 5, Magic: "?"}},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "A5fAU=",
			Map:              alphabet3,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(1), HMAC: intPtr(3)},
			TransformMessage: &models.TransformMessage{Map: alphabet7, Segments: 4, Multiplier: 22},
		},
	},
	{
		Version:          "xcx3.1.0",
		WireVersion:      "3.1",
		SignAlgorithm:    models.SignSHA256Wrap,
		TokenGeneration:  models.TokenGeneration1,
		Env:              models.EnvSpec{Secret: "wm0!@w_s#ll1flo(", RandomLength: 0},
		VisitKey:         models.VisitKeySpec{Seed: "0123456789", SelectLength: 3, RandomLength: 12, ConvertLength: 0},
		DefaultKeyExtend: "",
		ExtendDateStr:    "",
		Token: models.TokenSpec{
			BaseInfo: baseInfoApp02,
			Cipher:   models.TokenCipher{Secret1: "xxxxxxxxxxxx", Prefix: "xx", Secret2: "ap0!@f_t#ll0flo*", PerCallSecret: true},
		},
	},
	{
		Version:          "xcx4.2.0",
		WireVersion:      "4.2",
		SignAlgorithm:    models.SignSHA256Wrap,
		TokenGeneration:  models.TokenGeneration1,
		Env:              models.EnvSpec{Secret: "DNiHi703B0&17hh1", Fv: "xcx_v4.2.0", RandomLength: 10},
		VisitKey:         models.VisitKeySpec{Seed: "6d0jhqw3pa", SelectLength: 4, RandomLength: 11, ConvertLength: 14},
		DefaultKeyExtend: "9>5*t5",
		ExtendDateStr:    "74",
		Token: models.TokenSpec{
			BaseInfo: baseInfoApp02,
			Cipher:   models.TokenCipher{Secret1: "qem7+)g%Dhw5", Prefix: "z7", Secret2: "x6e@RoHi$Fgy7!5k"},
		},
	},
	{
		Version:          "xcx4.7.1",
		WireVersion:      "4.7",
		SignAlgorithm:    models.SignMD5Wrap,
		TokenGeneration:  models.TokenGeneration1,
		Env:              models.EnvSpec{Secret: "_M6Y?dvfN40VMF[X", Fv: "xcx_v4.7.1", RandomLength: 10},
		VisitKey:         models.VisitKeySpec{Seed: "1uct6d0jhq", SelectLength: 5, RandomLength: 10, ConvertLength: 15},
		DefaultKeyExtend: "?SPKw5",
		ExtendDateStr:    "22",
		Token: models.TokenSpec{
			BaseInfo: baseInfoApp03,
			Cipher:   models.TokenCipher{Secret1: "TY5G5cIQz9WS", Prefix: "LS", Secret2: "$Yr%39]TC2u_p<&9"},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:         "j04vfp",
			Map:          alphabet1,
			KeyReverse:   true,
			ConvertIndex: models.ConvertIndex{HMAC: intPtr(4)},
		},
	},
	{
		Version:          "xcx4.9.1",
		WireVersion:      "4.9",
		SignAlgorithm:    models.SignSHA256Wrap,
		TokenGeneration:  models.TokenGeneration2,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "xcx_v4.9.1", RandomLength: 10},
		VisitKey:         models.VisitKeySpec{Seed: "z4rekl9i1u", SelectLength: 4, RandomLength: 11, ConvertLength: 8},
		DefaultKeyExtend: "K.%@Ou",
		ExtendDateStr:    "98",
		Token: models.TokenSpec{
			BaseInfo: baseInfoApp04,
			Cipher:   models.TokenCipher{Secret1: "Ox18GNmWXl00", Prefix: "kM", Draw: &models.SecretDraw{Dict: dictTokenV4, Index: 5, Magic: "N"}},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:         "$_+0zz",
			Map:          alphabet2,
			ConvertIndex: models.ConvertIndex{Hex: intPtr(8), HMAC: intPtr(2)},
		},
	},

	// Families from 5.0.9 on draw the token secret per call.
	{
		Version:          "5.0.9",
		WireVersion:      "5.0",
		SignAlgorithm:    models.SignMD5Wrap,
		TokenGeneration:  models.TokenGeneration3,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.0.9", RandomLength: 12},
		VisitKey:         models.VisitKeySpec{Seed: "n9cj1ytexp", SelectLength: 3, RandomLength: 12, ConvertLength: 14},
		DefaultKeyExtend: "uFNlOh",
		ExtendDateStr:    "71",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb05,
			Cipher:   models.TokenCipher{Secret1: "wyk/E%6T6)2:", Prefix: "Iq", Draw: drawTokenV5},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "=%H[FQ",
			Map:              alphabet11,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(2), HMAC: intPtr(4)},
			TransformMessage: &models.TransformMessage{Map: alphabet12, Segments: 6, Multiplier: 13},
		},
	},
	{
		Version:          "5.1.0",
		WireVersion:      "5.1.0",
		SignAlgorithm:    models.SignSHA256Wrap,
		TokenGeneration:  models.TokenGeneration3,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.1.0", RandomLength: 11},
		VisitKey:         models.VisitKeySpec{Seed: "6t3gisuak7", SelectLength: 6, RandomLength: 9, ConvertLength: 14},
		DefaultKeyExtend: "MyPBR=",
		ExtendDateStr:    "26",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb05,
			Cipher:   models.TokenCipher{Secret1: "[jGq0lj(ekqa", Prefix: "vE", Draw: drawTokenV5},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "E=.K9,",
			Map:              alphabet13,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(2), HMAC: intPtr(6)},
			TransformMessage: &models.TransformMessage{Map: alphabet14, Segments: 9, Multiplier: 13},
		},
	},
	{
		Version:          "5.1.1",
		WireVersion:      "5.1.1",
		SignAlgorithm:    models.SignSHA256Wrap,
		TokenGeneration:  models.TokenGeneration3,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.1.1", RandomLength: 12},
		VisitKey:         models.VisitKeySpec{Seed: "5o1iqfrelb", SelectLength: 5, RandomLength: 10, ConvertLength: 10},
		DefaultKeyExtend: "Gfx&PX",
		ExtendDateStr:    "37",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb05,
			Cipher:   models.TokenCipher{Secret1: "n.D0w/,_b9l(", Prefix: ".U", Draw: drawTokenV5},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "k+_rbB",
			Map:              alphabet11,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(7), HMAC: intPtr(11)},
			TransformMessage: &models.TransformMessage{Map: alphabet15, Segments: 7, Multiplier: 18},
		},
	},
	{
		Version:          "5.1.2",
		WireVersion:      "5.1.2",
		SignAlgorithm:    models.SignSHA256Wrap,
		TokenGeneration:  models.TokenGeneration3,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.1.2", RandomLength: 11},
		VisitKey:         models.VisitKeySpec{Seed: "3n0pjmu9g1", SelectLength: 4, RandomLength: 11, ConvertLength: 12},
		DefaultKeyExtend: "S,6L%4",
		ExtendDateStr:    "24",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb05,
			Cipher:   models.TokenCipher{Secret1: "b*YBl1(F/4-5", Prefix: "5=", Draw: drawTokenV5},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "G_uVJe",
			Map:              alphabet16,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(7), HMAC: intPtr(1)},
			TransformMessage: &models.TransformMessage{Map: alphabet17, Segments: 9, Multiplier: 28},
		},
	},
	{
		Version:          "5.1.3",
		WireVersion:      "5.1.3",
		SignAlgorithm:    models.SignSHA256Wrap,
		TokenGeneration:  models.TokenGeneration3,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.1.3", RandomLength: 12},
		VisitKey:         models.VisitKeySpec{Seed: "liyzofab5s", SelectLength: 3, RandomLength: 12, ConvertLength: 9},
		DefaultKeyExtend: ".kB@Nw",
		ExtendDateStr:    "43",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb05,
			Cipher:   models.TokenCipher{Secret1: "_!N9LHi1es%j", Prefix: "LP", Draw: drawTokenV5},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "Sp3YpR",
			Map:              alphabet10,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(6), HMAC: intPtr(12)},
			TransformMessage: &models.TransformMessage{Map: alphabet18, Segments: 9, Multiplier: 23},
		},
	},
	{
		Version:          "5.1.4",
		WireVersion:      "5.1.4",
		SignAlgorithm:    models.SignSHA256Wrap,
		TokenGeneration:  models.TokenGeneration3,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.1.4", RandomLength: 12},
		VisitKey:         models.VisitKeySpec{Seed: "9i42b3jh51", SelectLength: 6, RandomLength: 9, ConvertLength: 8},
		DefaultKeyExtend: "iHe7Nx",
		ExtendDateStr:    "91",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb05,
			Cipher:   models.TokenCipher{Secret1: "N1Thsf_zTvnu", Prefix: "2i", Draw: drawTokenV5},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "QlIO~L",
			Map:              alphabet19,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(3), HMAC: intPtr(12)},
			TransformMessage: &models.TransformMessage{Map: alphabet20, Segments: 11, Multiplier: 24},
		},
	},
	{
		Version:          "5.1.5",
		WireVersion:      "5.1.5",
		SignAlgorithm:    models.SignSHA256Wrap,
		TokenGeneration:  models.TokenGeneration3,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.1.5", RandomLength: 11},
		VisitKey:         models.VisitKeySpec{Seed: "08w9kilfyr", SelectLength: 5, RandomLength: 10, ConvertLength: 14},
		DefaultKeyExtend: "J.XgTI",
		ExtendDateStr:    "29",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb05,
			Cipher:   models.TokenCipher{Secret1: "aE]0Z=8Z&^L~", Prefix: "!P", Draw: drawTokenV5},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "woU<<?",
			Map:              alphabet21,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(1), HMAC: intPtr(1)},
			TransformMessage: &models.TransformMessage{Map: alphabet13, Segments: 5, Multiplier: 26},
		},
	},
	{
		Version:          "5.1.6",
		WireVersion:      "5.1.6",
		SignAlgorithm:    models.SignSHA256Wrap,
		TokenGeneration:  models.TokenGeneration3,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.1.6", RandomLength: 11},
		VisitKey:         models.VisitKeySpec{Seed: "c7h2l4rixf", SelectLength: 6, RandomLength: 9, ConvertLength: 12},
		DefaultKeyExtend: "/TJ&m5",
		ExtendDateStr:    "76",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb05,
			Cipher:   models.TokenCipher{Secret1: "O|qxG0Kl4#m8", Prefix: "Ot", Draw: drawTokenV5},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "^tBPOw",
			Map:              alphabet22,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(4), HMAC: intPtr(10)},
			TransformMessage: &models.TransformMessage{Map: alphabet23, Segments: 4, Multiplier: 28},
		},
	},
	{
		Version:          "5.1.7",
		WireVersion:      "5.1.7",
		SignAlgorithm:    models.SignSHA256Wrap,
		TokenGeneration:  models.TokenGeneration3,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.1.7", RandomLength: 12},
		VisitKey:         models.VisitKeySpec{Seed: "kumpa5xynz", SelectLength: 5, RandomLength: 10, ConvertLength: 15},
		DefaultKeyExtend: "C:.Ru9",
		ExtendDateStr:    "89",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb05,
			Cipher:   models.TokenCipher{Secret1: "F?81$a_bn]=%", Prefix: "S/", Draw: drawTokenV5},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "~86bf9",
			Map:              alphabet24,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(3), HMAC: intPtr(1)},
			TransformMessage: &models.TransformMessage{Map: alphabet25, Segments: 12, Multiplier: 5},
		},
	},
	{
		Version:          "5.2.0",
		WireVersion:      "5.2.0",
		SignAlgorithm:    models.SignHMACSHA256Wrap,
		TokenGeneration:  models.TokenGeneration3,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.2.0", RandomLength: 11},
		VisitKey:         models.VisitKeySpec{Seed: "5bnw94ku3q", SelectLength: 3, RandomLength: 12, ConvertLength: 8},
		DefaultKeyExtend: "10oX(s",
		ExtendDateStr:    "98",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb05,
			Cipher:   models.TokenCipher{Secret1: "ZI5l^j5bxRo&", Prefix: "_S", Draw: drawTokenV5},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "%4XKQY",
			Map:              alphabet13,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(9), HMAC: intPtr(4)},
			TransformMessage: &models.TransformMessage{Map: alphabet26, Segments: 4, Multiplier: 18},
		},
	},
	{
		Version:          "5.2.1",
		WireVersion:      "5.2.1",
		SignAlgorithm:    models.SignHMACSHA256Wrap,
		TokenGeneration:  models.TokenGeneration3,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.2.1", RandomLength: 12},
		VisitKey:         models.VisitKeySpec{Seed: "90sd82lf6h", SelectLength: 4, RandomLength: 11, ConvertLength: 12},
		DefaultKeyExtend: "e47q&H",
		ExtendDateStr:    "61",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb05,
			Cipher:   models.TokenCipher{Secret1: "XU.rAC2bOk&T", Prefix: ",C", Draw: drawTokenV5},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "GiH*Ah",
			Map:              alphabet14,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(5), HMAC: intPtr(7)},
			TransformMessage: &models.TransformMessage{Map: alphabet27, Segments: 4, Multiplier: 18},
		},
	},
	{
		Version:          "5.2.2",
		WireVersion:      "5.2.2",
		SignAlgorithm:    models.SignHMACSHA256Wrap,
		TokenGeneration:  models.TokenGeneration3,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.2.2", RandomLength: 11},
		VisitKey:         models.VisitKeySpec{Seed: "fh34y0kteb", SelectLength: 6, RandomLength: 9, ConvertLength: 13},
		DefaultKeyExtend: "grR<9l",
		ExtendDateStr:    "21",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb05,
			Cipher:   models.TokenCipher{Secret1: "|s<oR/[%PI+Y", Prefix: "py", Draw: drawTokenV5},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "1To[50",
			Map:              alphabet28,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(6), HMAC: intPtr(14)},
			TransformMessage: &models.TransformMessage{Map: alphabet29, Segments: 10, Multiplier: 28},
		},
	},
	{
		Version:          "5.2.3",
		WireVersion:      "5.2.3",
		SignAlgorithm:    models.SignHMACSHA256Wrap,
		TokenGeneration:  models.TokenGeneration3,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.2.3", RandomLength: 12},
		VisitKey:         models.VisitKeySpec{Seed: "hc5uxi8ons", SelectLength: 6, RandomLength: 9, ConvertLength: 14},
		DefaultKeyExtend: "KOa:Zt",
		ExtendDateStr:    "02",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb05,
			Cipher:   models.TokenCipher{Secret1: "0#YEkR#sX=s]", Prefix: ")_", Draw: drawTokenV5},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "ybK]F@",
			Map:              alphabet30,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(8), HMAC: intPtr(3)},
			TransformMessage: &models.TransformMessage{Map: alphabet23, Segments: 12, Multiplier: 23},
		},
	},
	{
		Version:          "5.2.4",
		WireVersion:      "5.2.4",
		SignAlgorithm:    models.SignHMACSHA256Wrap,
		TokenGeneration:  models.TokenGeneration3,
		GenSignDefault:   true,
		Env:              models.EnvSpec{Fv: "h5_file_v5.2.4", RandomLength: 12},
		VisitKey:         models.VisitKeySpec{Seed: "axwhp8y6rv", SelectLength: 3, RandomLength: 12, ConvertLength: 13},
		DefaultKeyExtend: "jmrVe>",
		ExtendDateStr:    "74",
		Token: models.TokenSpec{
			BaseInfo: baseInfoWeb05,
			Cipher:   models.TokenCipher{Secret1: "KGuJNk1WE~AM", Prefix: "-4", Draw: drawTokenV5},
		},
		CustomAlgorithm: &models.CustomAlgorithm{
			Salt:             "mQEc@I",
			Map:              alphabet31,
			ConvertIndex:     models.ConvertIndex{Hex: intPtr(3), HMAC: intPtr(5)},
			TransformMessage: &models.TransformMessage{Map: alphabet32, Segments: 10, Multiplier: 28},
		},
	},
}
