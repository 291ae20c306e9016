package i18n

// Per-language display labels keyed by the raw upstream type. Coin swap
// deposits and withdrawals collapse into a single label so the composer
// can render both legs of a conversion under one heading; auto-exchange
// and funding fees get stable labels for the same reason. Types missing
// here fall back to English, then to Humanize.
var labels = buildLabels()

func buildLabels() map[Lang]map[string]string {
	out := make(map[Lang]map[string]string, len(texts))
	for lang, t := range texts {
		m := map[string]string{
			"COIN_SWAP_DEPOSIT":  t.CoinSwapMix,
			"COIN_SWAP_WITHDRAW": t.CoinSwapMix,
			"AUTO_EXCHANGE":      t.AutoExchangeMix,
			"FUNDING_FEE":        t.FundingFee,
		}
		for k, v := range displayLabels[lang] {
			m[k] = v
		}
		out[lang] = m
	}
	return out
}

var displayLabels = map[Lang]map[string]string{
	EN: {
		"TRANSFER":                       "Transfers",
		"REALIZED_PNL":                   "Realized PnL",
		"COMMISSION":                     "Trading Commission",
		"INSURANCE_CLEAR":                "Insurance Clear",
		"WELCOME_BONUS":                  "Welcome Bonus",
		"REFERRAL_KICKBACK":              "Referral Kickback",
		"COMISSION_REBATE":               "Commission Rebate",
		"CASH_COUPON":                    "Cash Coupon",
		"POSITION_LIMIT_INCREASE_FEE":    "Position Limit Increase Fee",
		"POSITION_CLAIM_TRANSFER":        "Position Claim Transfer",
		"DELIVERED_SETTELMENT":           "Delivery Settlement",
		"STRATEGY_UMFUTURES_TRANSFER":    "Strategy Futures Transfer",
		"FUTURES_PRESENT":                "Futures Gift",
		"EVENT_CONTRACTS_ORDER":          "Event Contracts Orders",
		"EVENT_CONTRACTS_PAYOUT":         "Event Contracts Payouts",
		"INTERNAL_COMMISSION":            "Internal Commission",
		"INTERNAL_TRANSFER":              "Internal Transfers",
		"BFUSD_REWARD":                   "BFUSD Reward",
		"INTERNAL_AGENT_REWARD":          "Agent Reward",
		"API_REBATE":                     "API Rebate",
		"CONTEST_REWARD":                 "Contest Reward",
		"INTERNAL_CONTEST_REWARD":        "Internal Contest Reward",
		"CROSS_COLLATERAL_TRANSFER":      "Cross Collateral Transfer",
		"OPTIONS_PREMIUM_FEE":            "Options Premium Fee",
		"OPTIONS_SETTLE_PROFIT":          "Options Settlement Profit",
		"LIEN_CLAIM":                     "Lien Claim",
		"INTERNAL_COMMISSION_REBATE":     "Internal Commission Rebate",
		"FEE_RETURN":                     "Fee Return",
		"FUTURES_PRESENT_SPONSOR_REFUND": "Futures Gift Sponsor Refund",
	},
	TR: {
		"TRANSFER":               "Transferler",
		"REALIZED_PNL":           "Gerçekleşen Kar/Zarar",
		"COMMISSION":             "İşlem Komisyonu",
		"INSURANCE_CLEAR":        "Sigorta Tasfiyesi",
		"WELCOME_BONUS":          "Hoş Geldin Bonusu",
		"REFERRAL_KICKBACK":      "Referans Ödülü",
		"COMISSION_REBATE":       "Komisyon İadesi",
		"CASH_COUPON":            "Nakit Kupon",
		"DELIVERED_SETTELMENT":   "Teslimat Uzlaşması",
		"EVENT_CONTRACTS_ORDER":  "Etkinlik Kontratı Emirleri",
		"EVENT_CONTRACTS_PAYOUT": "Etkinlik Kontratı Ödemeleri",
		"INTERNAL_TRANSFER":      "Dahili Transferler",
		"API_REBATE":             "API İadesi",
		"FEE_RETURN":             "Ücret İadesi",
	},
	ES: {
		"TRANSFER":     "Transferencias",
		"REALIZED_PNL": "PnL realizado",
		"COMMISSION":   "Comisión de trading",
	},
	PT: {
		"TRANSFER":     "Transferências",
		"REALIZED_PNL": "PnL realizado",
		"COMMISSION":   "Comissão de negociação",
	},
	VI: {
		"TRANSFER":     "Chuyển khoản",
		"REALIZED_PNL": "PnL đã thực hiện",
		"COMMISSION":   "Phí giao dịch",
	},
	RU: {
		"TRANSFER":     "Переводы",
		"REALIZED_PNL": "Реализованный PnL",
		"COMMISSION":   "Торговая комиссия",
	},
	UK: {
		"TRANSFER":     "Перекази",
		"REALIZED_PNL": "Реалізований PnL",
		"COMMISSION":   "Торгова комісія",
	},
	AR: {
		"TRANSFER":     "التحويلات",
		"REALIZED_PNL": "الأرباح والخسائر المحققة",
		"COMMISSION":   "عمولة التداول",
	},
	ZH: {
		"TRANSFER":     "转账",
		"REALIZED_PNL": "已实现盈亏",
		"COMMISSION":   "交易手续费",
	},
	KO: {
		"TRANSFER":     "이체",
		"REALIZED_PNL": "실현 손익",
		"COMMISSION":   "거래 수수료",
	},
}
