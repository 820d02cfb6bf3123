package game

const (
	LanesPerPlayer      = 4
	Lanes               = LanesPerPlayer * 2
	Players             = 2
	JudgementWindow     = 0.18 // seconds, anything further is a miss
	PerfectWindow       = 0.07 // seconds
	NoteSpeed           = 420.0
	FeedbackLifetime    = 0.6  // seconds a hit/miss label stays visible
	DefaultRoundLength  = 30.0 // seconds, used when no track is loaded
	LeadIn              = 0.2  // seconds between scheduling a track and playback
	TrailingGuard       = 0.05 // no beat is placed closer than this to the end
	FallbackProbability = 0.25
	PerfectPoints       = 100
	GoodPoints          = 50
	MissPenalty         = 5
)
