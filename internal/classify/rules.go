package classify

// Rules carries the shape thresholds the classifier matches against.
// APNs token length and the FCM length floor track platform behaviour that
// has changed before, so they are tunable rather than baked in.
type Rules struct {
	// APNsHexLength is the exact hex-character count of an APNs device token.
	APNsHexLength int
	// FCMMinLength is the minimum length of a colon-delimited FCM
	// registration token.
	FCMMinLength int
	// ShortTokenLimit marks inputs too short for any modern push token.
	ShortTokenLimit int
	// LongTokenLimit marks inputs suspiciously long for a push token.
	LongTokenLimit int
}

// DefaultRules returns thresholds matching tokens issued by current APNs and
// FCM deployments.
func DefaultRules() Rules {
	return Rules{
		APNsHexLength:   64,
		FCMMinLength:    100,
		ShortTokenLimit: 50,
		LongTokenLimit:  200,
	}
}

// normalized fills zero fields with defaults so a partially populated Rules
// (e.g. from a manifest override) stays usable.
func (r Rules) normalized() Rules {
	def := DefaultRules()
	if r.APNsHexLength <= 0 {
		r.APNsHexLength = def.APNsHexLength
	}
	if r.FCMMinLength <= 0 {
		r.FCMMinLength = def.FCMMinLength
	}
	if r.ShortTokenLimit <= 0 {
		r.ShortTokenLimit = def.ShortTokenLimit
	}
	if r.LongTokenLimit <= 0 {
		r.LongTokenLimit = def.LongTokenLimit
	}
	return r
}
