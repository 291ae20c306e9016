package i18n

// Texts holds the sentence templates the narrative composer fills in.
// Placeholders use {NAME} form; see Format.
type Texts struct {
	TimesNote            string // {ZONE}
	InitialBalancesIntro string
	TransferSentenceTo   string // {AMOUNT} {ASSET}, incoming transfer
	TransferSentenceFrom string // {AMOUNT} {ASSET}, outgoing transfer
	ChangedFromTo        string // {BEFORE} {AFTER} {ASSET}
	BalanceChanged       string
	StartLineNoTransfer  string
	AfterStart           string
	Out                  string
	In                   string
	FundingFeesReceived  string
	FundingFeesPaid      string
	FinalIntro           string

	// Group labels the composer needs to recognize by value.
	CoinSwapMix     string
	AutoExchangeMix string
	FundingFee      string
}

var texts = map[Lang]Texts{
	EN: {
		TimesNote:            "All times are shown in {ZONE}.",
		InitialBalancesIntro: "Initial balances:",
		TransferSentenceTo:   "a transfer of {AMOUNT} {ASSET} arrived in the account.",
		TransferSentenceFrom: "a transfer of {AMOUNT} {ASSET} left the account.",
		ChangedFromTo:        "The {ASSET} balance changed from {BEFORE} to {AFTER}.",
		BalanceChanged:       "The balance changed accordingly.",
		StartLineNoTransfer:  "activity starts here.",
		AfterStart:           "After this point the account saw the following activity:",
		Out:                  "Out",
		In:                   "In",
		FundingFeesReceived:  "Received",
		FundingFeesPaid:      "Paid",
		FinalIntro:           "Final expected balances:",
		CoinSwapMix:          "Coin Swaps",
		AutoExchangeMix:      "Auto-Exchange",
		FundingFee:           "Funding Fees",
	},
	TR: {
		TimesNote:            "Tüm saatler {ZONE} olarak gösterilir.",
		InitialBalancesIntro: "Başlangıç bakiyeleri:",
		TransferSentenceTo:   "hesaba {AMOUNT} {ASSET} transferi geldi.",
		TransferSentenceFrom: "hesaptan {AMOUNT} {ASSET} transferi çıktı.",
		ChangedFromTo:        "{ASSET} bakiyesi {BEFORE} değerinden {AFTER} değerine değişti.",
		BalanceChanged:       "Bakiye buna göre değişti.",
		StartLineNoTransfer:  "hareketler burada başlıyor.",
		AfterStart:           "Bu noktadan sonra hesapta şu hareketler görüldü:",
		Out:                  "Çıkan",
		In:                   "Giren",
		FundingFeesReceived:  "Alınan",
		FundingFeesPaid:      "Ödenen",
		FinalIntro:           "Beklenen son bakiyeler:",
		CoinSwapMix:          "Coin Dönüşümleri",
		AutoExchangeMix:      "Otomatik Dönüşüm",
		FundingFee:           "Fonlama Ücretleri",
	},
	ES: {
		TimesNote:            "Todas las horas se muestran en {ZONE}.",
		InitialBalancesIntro: "Saldos iniciales:",
		TransferSentenceTo:   "llegó una transferencia de {AMOUNT} {ASSET} a la cuenta.",
		TransferSentenceFrom: "salió una transferencia de {AMOUNT} {ASSET} de la cuenta.",
		ChangedFromTo:        "El saldo de {ASSET} cambió de {BEFORE} a {AFTER}.",
		BalanceChanged:       "El saldo cambió en consecuencia.",
		StartLineNoTransfer:  "la actividad comienza aquí.",
		AfterStart:           "A partir de este punto la cuenta registró la siguiente actividad:",
		Out:                  "Salida",
		In:                   "Entrada",
		FundingFeesReceived:  "Recibido",
		FundingFeesPaid:      "Pagado",
		FinalIntro:           "Saldos finales esperados:",
		CoinSwapMix:          "Conversiones de monedas",
		AutoExchangeMix:      "Intercambio automático",
		FundingFee:           "Tarifas de financiación",
	},
	PT: {
		TimesNote:            "Todos os horários são mostrados em {ZONE}.",
		InitialBalancesIntro: "Saldos iniciais:",
		TransferSentenceTo:   "uma transferência de {AMOUNT} {ASSET} chegou à conta.",
		TransferSentenceFrom: "uma transferência de {AMOUNT} {ASSET} saiu da conta.",
		ChangedFromTo:        "O saldo de {ASSET} mudou de {BEFORE} para {AFTER}.",
		BalanceChanged:       "O saldo mudou de acordo.",
		StartLineNoTransfer:  "a atividade começa aqui.",
		AfterStart:           "A partir deste ponto a conta registrou a seguinte atividade:",
		Out:                  "Saída",
		In:                   "Entrada",
		FundingFeesReceived:  "Recebido",
		FundingFeesPaid:      "Pago",
		FinalIntro:           "Saldos finais esperados:",
		CoinSwapMix:          "Conversões de moedas",
		AutoExchangeMix:      "Troca automática",
		FundingFee:           "Taxas de financiamento",
	},
	VI: {
		TimesNote:            "Tất cả thời gian được hiển thị theo {ZONE}.",
		InitialBalancesIntro: "Số dư ban đầu:",
		TransferSentenceTo:   "một khoản chuyển {AMOUNT} {ASSET} đã vào tài khoản.",
		TransferSentenceFrom: "một khoản chuyển {AMOUNT} {ASSET} đã rời tài khoản.",
		ChangedFromTo:        "Số dư {ASSET} thay đổi từ {BEFORE} thành {AFTER}.",
		BalanceChanged:       "Số dư đã thay đổi tương ứng.",
		StartLineNoTransfer:  "hoạt động bắt đầu tại đây.",
		AfterStart:           "Sau thời điểm này tài khoản ghi nhận hoạt động sau:",
		Out:                  "Ra",
		In:                   "Vào",
		FundingFeesReceived:  "Đã nhận",
		FundingFeesPaid:      "Đã trả",
		FinalIntro:           "Số dư cuối dự kiến:",
		CoinSwapMix:          "Hoán đổi coin",
		AutoExchangeMix:      "Chuyển đổi tự động",
		FundingFee:           "Phí funding",
	},
	RU: {
		TimesNote:            "Все время показано в {ZONE}.",
		InitialBalancesIntro: "Начальные балансы:",
		TransferSentenceTo:   "на счёт поступил перевод {AMOUNT} {ASSET}.",
		TransferSentenceFrom: "со счёта ушёл перевод {AMOUNT} {ASSET}.",
		ChangedFromTo:        "Баланс {ASSET} изменился с {BEFORE} на {AFTER}.",
		BalanceChanged:       "Баланс изменился соответственно.",
		StartLineNoTransfer:  "активность начинается здесь.",
		AfterStart:           "После этого момента по счёту прошли следующие операции:",
		Out:                  "Списано",
		In:                   "Зачислено",
		FundingFeesReceived:  "Получено",
		FundingFeesPaid:      "Уплачено",
		FinalIntro:           "Ожидаемые итоговые балансы:",
		CoinSwapMix:          "Обмены монет",
		AutoExchangeMix:      "Автообмен",
		FundingFee:           "Ставки финансирования",
	},
	UK: {
		TimesNote:            "Увесь час показано в {ZONE}.",
		InitialBalancesIntro: "Початкові баланси:",
		TransferSentenceTo:   "на рахунок надійшов переказ {AMOUNT} {ASSET}.",
		TransferSentenceFrom: "з рахунку вийшов переказ {AMOUNT} {ASSET}.",
		ChangedFromTo:        "Баланс {ASSET} змінився з {BEFORE} на {AFTER}.",
		BalanceChanged:       "Баланс змінився відповідно.",
		StartLineNoTransfer:  "активність починається тут.",
		AfterStart:           "Після цього моменту на рахунку відбулися такі операції:",
		Out:                  "Списано",
		In:                   "Зараховано",
		FundingFeesReceived:  "Отримано",
		FundingFeesPaid:      "Сплачено",
		FinalIntro:           "Очікувані кінцеві баланси:",
		CoinSwapMix:          "Обміни монет",
		AutoExchangeMix:      "Автообмін",
		FundingFee:           "Ставки фінансування",
	},
	AR: {
		TimesNote:            "جميع الأوقات معروضة بتوقيت {ZONE}.",
		InitialBalancesIntro: "الأرصدة الأولية:",
		TransferSentenceTo:   "وصل تحويل بقيمة {AMOUNT} {ASSET} إلى الحساب.",
		TransferSentenceFrom: "خرج تحويل بقيمة {AMOUNT} {ASSET} من الحساب.",
		ChangedFromTo:        "تغير رصيد {ASSET} من {BEFORE} إلى {AFTER}.",
		BalanceChanged:       "تغير الرصيد وفقًا لذلك.",
		StartLineNoTransfer:  "يبدأ النشاط هنا.",
		AfterStart:           "بعد هذه النقطة شهد الحساب النشاط التالي:",
		Out:                  "خارج",
		In:                   "داخل",
		FundingFeesReceived:  "مستلَم",
		FundingFeesPaid:      "مدفوع",
		FinalIntro:           "الأرصدة النهائية المتوقعة:",
		CoinSwapMix:          "مبادلات العملات",
		AutoExchangeMix:      "التحويل التلقائي",
		FundingFee:           "رسوم التمويل",
	},
	ZH: {
		TimesNote:            "所有时间均以 {ZONE} 显示。",
		InitialBalancesIntro: "初始余额：",
		TransferSentenceTo:   "账户收到一笔 {AMOUNT} {ASSET} 的转账。",
		TransferSentenceFrom: "账户转出一笔 {AMOUNT} {ASSET} 的转账。",
		ChangedFromTo:        "{ASSET} 余额从 {BEFORE} 变为 {AFTER}。",
		BalanceChanged:       "余额随之变化。",
		StartLineNoTransfer:  "活动从这里开始。",
		AfterStart:           "此后账户发生了以下活动：",
		Out:                  "转出",
		In:                   "转入",
		FundingFeesReceived:  "已收取",
		FundingFeesPaid:      "已支付",
		FinalIntro:           "预期最终余额：",
		CoinSwapMix:          "币种兑换",
		AutoExchangeMix:      "自动兑换",
		FundingFee:           "资金费用",
	},
	KO: {
		TimesNote:            "모든 시간은 {ZONE} 기준으로 표시됩니다.",
		InitialBalancesIntro: "초기 잔액:",
		TransferSentenceTo:   "{AMOUNT} {ASSET} 이체가 계정으로 들어왔습니다.",
		TransferSentenceFrom: "{AMOUNT} {ASSET} 이체가 계정에서 나갔습니다.",
		ChangedFromTo:        "{ASSET} 잔액이 {BEFORE}에서 {AFTER}(으)로 변경되었습니다.",
		BalanceChanged:       "잔액이 그에 따라 변경되었습니다.",
		StartLineNoTransfer:  "활동이 여기서 시작됩니다.",
		AfterStart:           "이 시점 이후 계정에 다음 활동이 있었습니다:",
		Out:                  "출금",
		In:                   "입금",
		FundingFeesReceived:  "수령",
		FundingFeesPaid:      "지불",
		FinalIntro:           "예상 최종 잔액:",
		CoinSwapMix:          "코인 스왑",
		AutoExchangeMix:      "자동 교환",
		FundingFee:           "펀딩 수수료",
	},
}
