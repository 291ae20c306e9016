package models

// Transaction type values seen in balance logs. The set is open: upstream
// adds categories without notice, so these are matching constants only and
// unknown values flow through untouched.
const (
	TypeTransfer                    = "TRANSFER"
	TypeRealizedPnl                 = "REALIZED_PNL"
	TypeFundingFee                  = "FUNDING_FEE"
	TypeCommission                  = "COMMISSION"
	TypeInsuranceClear              = "INSURANCE_CLEAR"
	TypeWelcomeBonus                = "WELCOME_BONUS"
	TypeReferralKickback            = "REFERRAL_KICKBACK"
	TypeCommissionRebate            = "COMISSION_REBATE"
	TypeCashCoupon                  = "CASH_COUPON"
	TypeCoinSwapDeposit             = "COIN_SWAP_DEPOSIT"
	TypeCoinSwapWithdraw            = "COIN_SWAP_WITHDRAW"
	TypePositionLimitIncreaseFee    = "POSITION_LIMIT_INCREASE_FEE"
	TypePositionClaimTransfer       = "POSITION_CLAIM_TRANSFER"
	TypeAutoExchange                = "AUTO_EXCHANGE"
	TypeDeliveredSettlement         = "DELIVERED_SETTELMENT"
	TypeStrategyUMFuturesTransfer   = "STRATEGY_UMFUTURES_TRANSFER"
	TypeFuturesPresent              = "FUTURES_PRESENT"
	TypeEventContractsOrder         = "EVENT_CONTRACTS_ORDER"
	TypeEventContractsPayout        = "EVENT_CONTRACTS_PAYOUT"
	TypeInternalCommission          = "INTERNAL_COMMISSION"
	TypeInternalTransfer            = "INTERNAL_TRANSFER"
	TypeBFUSDReward                 = "BFUSD_REWARD"
	TypeInternalAgentReward         = "INTERNAL_AGENT_REWARD"
	TypeAPIRebate                   = "API_REBATE"
	TypeContestReward               = "CONTEST_REWARD"
	TypeInternalContestReward       = "INTERNAL_CONTEST_REWARD"
	TypeCrossCollateralTransfer     = "CROSS_COLLATERAL_TRANSFER"
	TypeOptionsPremiumFee           = "OPTIONS_PREMIUM_FEE"
	TypeOptionsSettleProfit         = "OPTIONS_SETTLE_PROFIT"
	TypeLienClaim                   = "LIEN_CLAIM"
	TypeInternalCommissionRebate    = "INTERNAL_COMMISSION_REBATE"
	TypeFeeReturn                   = "FEE_RETURN"
	TypeFuturesPresentSponsorRefund = "FUTURES_PRESENT_SPONSOR_REFUND"
)
