package commands

const (
	HomeFlag        = "home"
	LogLevelFlag    = "log-level"
	LogFormatFlag   = "log-format"
	MetricsFileFlag = "metrics-file"
	ForceFlag       = "force"

	// scheme parameters
	RatioFlag              = "ratio"
	SlashRateFlag          = "slash-rate"
	RandaoCommitExpiryFlag = "randao-commit-expiry"
	ValidatorsFlag         = "validators"
	UsesFlag               = "uses"
	StaticSamplesFlag      = "static-samples"

	BitsFlag = "bits"

	// sweep
	FromFlag = "from"
	ToFlag   = "to"
	StepFlag = "step"

	// gas chart
	WidthFlag  = "width"
	HeightFlag = "height"
)
