package meristem

// scale selects how a feature difference is graded.
type scale int

const (
	// scaleRelative grades by percentage deviation from the reference.
	scaleRelative scale = iota

	// scaleAbsolute grades by absolute difference, in the feature's own unit.
	scaleAbsolute

	// scaleExact grades categorical values: equal or not.
	scaleExact

	// scaleSafety is scaleAbsolute plus a hard streaming-compliance ceiling
	// checked before anything else.
	scaleSafety
)

// grades holds the tier breakpoints, in the unit the scale implies
// (percent for scaleRelative, feature unit for scaleAbsolute and
// scaleSafety). Differences beyond warning grade critical.
type grades struct {
	perfect float64
	good    float64
	warning float64
}

// relativeGrades is shared by every percentage-graded feature.
var relativeGrades = grades{perfect: 5, good: 15, warning: 30}

// tierMessages holds one phrase per tier and direction. High means the
// candidate exceeds the reference. Placeholders: {ref} is the formatted
// reference value, {diff} the absolute difference, {pct} the percentage
// deviation.
type tierMessages struct {
	perfect  string
	goodHigh string
	goodLow  string
	warnHigh string
	warnLow  string
	critHigh string
	critLow  string
}

// policy drives the verdict for one feature: presentation (label, unit,
// precision), grading scale and breakpoints, and the phrase templates.
type policy struct {
	label string
	unit  string
	prec  int
	scale scale
	bands grades
	msg   tierMessages
}

// truePeakCeiling is the streaming compliance limit in dBTP. Anything
// above it grades critical regardless of the reference.
const truePeakCeiling = -1.0

const truePeakDanger = "DANGER! Above -1.0 dBTP will clip on Spotify/streaming! Lower limiter ceiling immediately!"

// policies maps feature names to their grading policy. Features absent
// here (zero_crossing_rate) are measured but never graded.
var policies = map[string]policy{
	"bpm": {
		label: "BPM", prec: 1, scale: scaleRelative, bands: relativeGrades,
		msg: tierMessages{
			perfect:  "Nearly identical to reference ({ref})!",
			goodHigh: "Slightly faster than reference ({ref}, {pct}% diff)",
			goodLow:  "Slightly slower than reference ({ref}, {pct}% diff)",
			warnHigh: "Slow down by {diff} BPM to match reference ({ref})",
			warnLow:  "Speed up by {diff} BPM to match reference ({ref})",
			critHigh: "Much faster than reference ({ref}). Consider: Are you matching the right style?",
			critLow:  "Much slower than reference ({ref}). Consider: Are you matching the right style?",
		},
	},
	"key": {
		label: "Key", scale: scaleExact,
		msg: tierMessages{
			perfect:  "Perfect key match!",
			warnHigh: "Different from reference ({ref}). Consider transposing or checking if this matters for your genre.",
		},
	},
	"key_confidence": {
		label: "Key Confidence", prec: 2, scale: scaleRelative, bands: relativeGrades,
		msg: tierMessages{
			perfect:  "Confident key detection on both tracks!",
			goodHigh: "Similar to reference ({ref})",
			goodLow:  "Similar to reference ({ref})",
			warnHigh: "More confident key detection than reference ({ref})",
			warnLow:  "Less confident key detection than reference ({ref})",
			critHigh: "Very different key detection confidence from reference ({ref})",
			critLow:  "Very different key detection confidence from reference ({ref})",
		},
	},
	"energy": {
		label: "Energy", prec: 3, scale: scaleRelative, bands: relativeGrades,
		msg: tierMessages{
			perfect:  "Perfect match with reference!",
			goodHigh: "Very close to reference ({ref})",
			goodLow:  "Very close to reference ({ref})",
			warnHigh: "Your track is more energetic. Reduce compression/intensity to match reference ({ref})",
			warnLow:  "Your track is less energetic. Increase compression/intensity to match reference ({ref})",
			critHigh: "Much more intense than reference ({ref}). Major mixing adjustments needed!",
			critLow:  "Much less intense than reference ({ref}). Major mixing adjustments needed!",
		},
	},
	"loudness": {
		label: "Loudness", unit: " LUFS", prec: 1, scale: scaleAbsolute,
		bands: grades{perfect: 0.5, good: 1.5, warning: 3.0},
		msg: tierMessages{
			perfect:  "Perfectly matched to reference!",
			goodHigh: "Slightly louder than reference ({ref} LUFS, {diff}dB diff)",
			goodLow:  "Slightly quieter than reference ({ref} LUFS, {diff}dB diff)",
			warnHigh: "Reduce mastering by {diff}dB to match reference ({ref} LUFS)",
			warnLow:  "Increase mastering by {diff}dB to match reference ({ref} LUFS)",
			critHigh: "Much too loud! Adjust mastering by {diff}dB (reference: {ref} LUFS)",
			critLow:  "Much too quiet! Adjust mastering by {diff}dB (reference: {ref} LUFS)",
		},
	},
	"spectral_centroid": {
		label: "Brightness", unit: " Hz", scale: scaleRelative, bands: relativeGrades,
		msg: tierMessages{
			perfect:  "Excellent tonal match with reference!",
			goodHigh: "Very similar to reference ({ref} Hz)",
			goodLow:  "Very similar to reference ({ref} Hz)",
			warnHigh: "Your track is brighter. Cut highs (8kHz+) or add warmth (200-500Hz) (reference: {ref} Hz)",
			warnLow:  "Your track is darker. Boost highs (5-10kHz) or reduce low mids (reference: {ref} Hz)",
			critHigh: "Major tonal difference! Heavy high-shelf cut or significant low-mid boost needed (reference: {ref} Hz)",
			critLow:  "Major tonal difference! Heavy high-shelf boost or significant low-mid cut needed (reference: {ref} Hz)",
		},
	},
	"rms": {
		label: "RMS Energy", prec: 3, scale: scaleRelative, bands: relativeGrades,
		msg: tierMessages{
			perfect:  "Perfect dynamic range match!",
			goodHigh: "Similar dynamics to reference ({ref})",
			goodLow:  "Similar dynamics to reference ({ref})",
			warnHigh: "Your track is more compressed. Back off compression/limiting (reference: {ref})",
			warnLow:  "Your track is less compressed. Add more compression/limiting (reference: {ref})",
			critHigh: "Your track is heavily over-compressed! Reduce limiting significantly (reference: {ref})",
			critLow:  "Your track needs more compression to match reference's density (reference: {ref})",
		},
	},
	"spectral_rolloff": {
		label: "Spectral Rolloff", unit: " Hz", scale: scaleRelative, bands: relativeGrades,
		msg: tierMessages{
			perfect:  "Excellent frequency balance!",
			goodHigh: "Similar to reference ({ref} Hz)",
			goodLow:  "Similar to reference ({ref} Hz)",
			warnHigh: "Your track has more high-frequency content. Gentle high-shelf cut (reference: {ref} Hz)",
			warnLow:  "Your track has less high-frequency content. Gentle high-shelf boost (reference: {ref} Hz)",
			critHigh: "Much brighter than reference ({ref} Hz). Major EQ adjustment needed!",
			critLow:  "Much darker than reference ({ref} Hz). Major EQ adjustment needed!",
		},
	},
	"spectral_flatness": {
		label: "Spectral Flatness", prec: 3, scale: scaleRelative, bands: relativeGrades,
		msg: tierMessages{
			perfect:  "Perfect tonality match!",
			goodHigh: "Similar character to reference ({ref})",
			goodLow:  "Similar character to reference ({ref})",
			warnHigh: "Your track is more noisy/white-noise character (reference: {ref})",
			warnLow:  "Your track is more tonal/harmonic (reference: {ref})",
			critHigh: "Very different tonal character from reference ({ref})",
			critLow:  "Very different tonal character from reference ({ref})",
		},
	},
	"spectral_contrast": {
		label: "Spectral Contrast", unit: " dB", prec: 1, scale: scaleRelative, bands: relativeGrades,
		msg: tierMessages{
			perfect:  "Perfect clarity match!",
			goodHigh: "Similar to reference ({ref} dB)",
			goodLow:  "Similar to reference ({ref} dB)",
			warnHigh: "More punchy/clear. Try: soften EQ peaks, add subtle saturation (reference: {ref} dB)",
			warnLow:  "Less clear/defined. Try: sharpen EQ, multiband compression (reference: {ref} dB)",
			critHigh: "Way too harsh/aggressive! Major EQ smoothing needed (reference: {ref} dB)",
			critLow:  "Very muddy/flat! Needs significant clarity enhancement (reference: {ref} dB)",
		},
	},
	"low_energy": {
		label: "Low Energy", unit: "%", prec: 1, scale: scaleAbsolute,
		bands: grades{perfect: 3, good: 8, warning: 15},
		msg: tierMessages{
			perfect:  "Perfect bass balance!",
			goodHigh: "Similar to reference ({ref}%)",
			goodLow:  "Similar to reference ({ref}%)",
			warnHigh: "Your track has more bass. Reduce lows (20-250Hz) (reference: {ref}%)",
			warnLow:  "Your track has less bass. Boost lows (20-250Hz) (reference: {ref}%)",
			critHigh: "Major bass imbalance! Adjust 20-250Hz range significantly (reference: {ref}%)",
			critLow:  "Major bass imbalance! Adjust 20-250Hz range significantly (reference: {ref}%)",
		},
	},
	"mid_energy": {
		label: "Mid Energy", unit: "%", prec: 1, scale: scaleAbsolute,
		bands: grades{perfect: 3, good: 8, warning: 15},
		msg: tierMessages{
			perfect:  "Perfect midrange balance!",
			goodHigh: "Similar to reference ({ref}%)",
			goodLow:  "Similar to reference ({ref}%)",
			warnHigh: "Your track has more mids. Cut 250Hz-4kHz (reference: {ref}%)",
			warnLow:  "Your track has less mids. Boost 250Hz-4kHz (reference: {ref}%)",
			critHigh: "Major midrange imbalance! Adjust 250Hz-4kHz range (reference: {ref}%)",
			critLow:  "Major midrange imbalance! Adjust 250Hz-4kHz range (reference: {ref}%)",
		},
	},
	"high_energy": {
		label: "High Energy", unit: "%", prec: 1, scale: scaleAbsolute,
		bands: grades{perfect: 3, good: 8, warning: 15},
		msg: tierMessages{
			perfect:  "Perfect treble balance!",
			goodHigh: "Similar to reference ({ref}%)",
			goodLow:  "Similar to reference ({ref}%)",
			warnHigh: "Your track has more highs. Cut 4kHz+ (reference: {ref}%)",
			warnLow:  "Your track has less highs. Boost 4kHz+ (reference: {ref}%)",
			critHigh: "Major treble imbalance! Adjust 4kHz+ range significantly (reference: {ref}%)",
			critLow:  "Major treble imbalance! Adjust 4kHz+ range significantly (reference: {ref}%)",
		},
	},
	"sub_bass_presence": {
		label: "Sub-bass", unit: "%", prec: 1, scale: scaleAbsolute,
		bands: grades{perfect: 2, good: 5, warning: 10},
		msg: tierMessages{
			perfect:  "Perfect sub-bass presence!",
			goodHigh: "Similar to reference ({ref}%)",
			goodLow:  "Similar to reference ({ref}%)",
			warnHigh: "Your track has more sub-bass. Reduce 20-60Hz (reference: {ref}%)",
			warnLow:  "Your track has less sub-bass. Boost 20-60Hz (reference: {ref}%)",
			critHigh: "Major sub-bass difference! Adjust 20-60Hz range (reference: {ref}%)",
			critLow:  "Major sub-bass difference! Adjust 20-60Hz range (reference: {ref}%)",
		},
	},
	"dynamic_range": {
		label: "Dynamic Range", unit: " dB", prec: 1, scale: scaleAbsolute,
		bands: grades{perfect: 1, good: 2, warning: 4},
		msg: tierMessages{
			perfect:  "Perfect DR match!",
			goodHigh: "Similar to reference ({ref} dB)",
			goodLow:  "Similar to reference ({ref} dB)",
			warnHigh: "Your track is more dynamic. Increase limiting (reference: {ref} dB)",
			warnLow:  "Your track is more compressed. Reduce limiting (reference: {ref} dB)",
			critHigh: "Much more dynamic! Major mastering adjustment needed (reference: {ref} dB)",
			critLow:  "Over-compressed! Major mastering adjustment needed (reference: {ref} dB)",
		},
	},
	"loudness_range": {
		label: "Loudness Range", unit: " LU", prec: 1, scale: scaleAbsolute,
		bands: grades{perfect: 1, good: 2, warning: 4},
		msg: tierMessages{
			perfect:  "Perfect dynamic variation for streaming!",
			goodHigh: "Good match to reference ({ref} LU)",
			goodLow:  "Good match to reference ({ref} LU)",
			warnHigh: "Your track has more dynamic variation. Reduce automation/compression (reference: {ref} LU)",
			warnLow:  "Your track has less dynamic variation. Add more automation/dynamics (reference: {ref} LU)",
			critHigh: "Too dynamic for playlist! Increase compression/limiting (reference: {ref} LU)",
			critLow:  "Over-compressed! Restore dynamics, reduce limiting (reference: {ref} LU)",
		},
	},
	"true_peak": {
		label: "True Peak", unit: " dBTP", prec: 1, scale: scaleSafety,
		bands: grades{perfect: 0.5, good: 1.5, warning: 1e9},
		msg: tierMessages{
			perfect:  "Perfect match with reference ({ref} dBTP)",
			goodHigh: "Similar to reference ({ref} dBTP)",
			goodLow:  "Similar to reference ({ref} dBTP)",
			warnHigh: "louder than reference ({ref} dBTP)",
			warnLow:  "quieter than reference ({ref} dBTP)",
			critHigh: truePeakDanger,
			critLow:  truePeakDanger,
		},
	},
	"crest_factor": {
		label: "Crest Factor", unit: " dB", prec: 1, scale: scaleAbsolute,
		bands: grades{perfect: 1, good: 2, warning: 4},
		msg: tierMessages{
			perfect:  "Perfect punch match!",
			goodHigh: "Similar to reference ({ref} dB)",
			goodLow:  "Similar to reference ({ref} dB)",
			warnHigh: "Your track is more punchy/dynamic. Increase limiting ratio (reference: {ref} dB)",
			warnLow:  "Your track is more compressed/dense. Reduce limiting, allow more peaks (reference: {ref} dB)",
			critHigh: "Way too punchy/under-limited! Needs more compression (reference: {ref} dB)",
			critLow:  "Heavily over-compressed! Brick-walled. Reduce limiting drastically (reference: {ref} dB)",
		},
	},
	"danceability": {
		label: "Danceability", prec: 2, scale: scaleRelative, bands: relativeGrades,
		msg: tierMessages{
			perfect:  "Perfect groove match!",
			goodHigh: "Similar to reference ({ref})",
			goodLow:  "Similar to reference ({ref})",
			warnHigh: "Your track is more danceable. Soften rhythm elements (reference: {ref})",
			warnLow:  "Your track is less danceable. Enhance rhythm elements, strengthen beats (reference: {ref})",
			critHigh: "Major groove difference from reference ({ref})",
			critLow:  "Major groove difference from reference ({ref})",
		},
	},
	"beat_strength": {
		label: "Beat Strength", prec: 2, scale: scaleRelative, bands: relativeGrades,
		msg: tierMessages{
			perfect:  "Perfect rhythmic punch!",
			goodHigh: "Similar to reference ({ref})",
			goodLow:  "Similar to reference ({ref})",
			warnHigh: "Your track has stronger beats. Reduce transient shaping/compression on drums (reference: {ref})",
			warnLow:  "Your track has weaker beats. Add transient shaping, compress drums (reference: {ref})",
			critHigh: "Major difference in beat prominence from reference ({ref})",
			critLow:  "Major difference in beat prominence from reference ({ref})",
		},
	},
	"valence": {
		label: "Valence", prec: 2, scale: scaleRelative, bands: relativeGrades,
		msg: tierMessages{
			perfect:  "Perfect emotional match!",
			goodHigh: "Similar mood to reference ({ref})",
			goodLow:  "Similar mood to reference ({ref})",
			warnHigh: "Your track sounds happier/more positive than reference ({ref})",
			warnLow:  "Your track sounds sadder/darker than reference ({ref})",
			critHigh: "Very different emotional character from reference ({ref})",
			critLow:  "Very different emotional character from reference ({ref})",
		},
	},
	"stereo_width": {
		label: "Stereo Width", prec: 2, scale: scaleRelative, bands: relativeGrades,
		msg: tierMessages{
			perfect:  "Perfect stereo image match!",
			goodHigh: "Similar to reference ({ref})",
			goodLow:  "Similar to reference ({ref})",
			warnHigh: "Your track is wider. Reduce stereo widening (reference: {ref})",
			warnLow:  "Your track is narrower/more mono. Add stereo widening (reference: {ref})",
			critHigh: "Much wider than reference ({ref}). Major stereo adjustment needed!",
			critLow:  "Much more mono than reference ({ref}). Major stereo adjustment needed!",
		},
	},
	"transient_energy": {
		label: "Transient Energy", unit: "%", prec: 1, scale: scaleAbsolute,
		bands: grades{perfect: 3, good: 8, warning: 15},
		msg: tierMessages{
			perfect:  "Perfect attack/sustain balance!",
			goodHigh: "Similar to reference ({ref}%)",
			goodLow:  "Similar to reference ({ref}%)",
			warnHigh: "Your track is more percussive/rhythmic. Soften transients (reference: {ref}%)",
			warnLow:  "Your track is more sustained/smooth. Enhance transients with transient shaper (reference: {ref}%)",
			critHigh: "Too percussive/clicky! Soften attacks significantly (reference: {ref}%)",
			critLow:  "Too smooth/dull! Needs major transient enhancement (reference: {ref}%)",
		},
	},
	"harmonic_to_noise_ratio": {
		label: "HNR", unit: " dB", prec: 1, scale: scaleAbsolute,
		bands: grades{perfect: 2, good: 4, warning: 8},
		msg: tierMessages{
			perfect:  "Perfect tonal/noise balance!",
			goodHigh: "Similar character to reference ({ref} dB)",
			goodLow:  "Similar character to reference ({ref} dB)",
			warnHigh: "More tonal/clean. Try: add subtle noise/saturation for character (reference: {ref} dB)",
			warnLow:  "More noisy/textured. Try: noise reduction, cleaner recording (reference: {ref} dB)",
			critHigh: "Too clean/sterile! Add texture, saturation, noise (reference: {ref} dB)",
			critLow:  "Very noisy/lo-fi! Major noise reduction needed (reference: {ref} dB)",
		},
	},
	"harmonic_complexity": {
		label: "Harmonic Complexity", prec: 2, scale: scaleRelative, bands: relativeGrades,
		msg: tierMessages{
			perfect:  "Perfect harmonic match!",
			goodHigh: "Similar to reference ({ref})",
			goodLow:  "Similar to reference ({ref})",
			warnHigh: "More complex harmonies. Try: simplify chord progressions (reference: {ref})",
			warnLow:  "Simpler harmonies. Try: add passing chords, extensions (reference: {ref})",
			critHigh: "Way too complex! Major simplification needed (reference: {ref})",
			critLow:  "Too simple! Add more harmonic interest (reference: {ref})",
		},
	},
	"melodic_range": {
		label: "Melodic Range", unit: " semitones", scale: scaleAbsolute,
		bands: grades{perfect: 3, good: 6, warning: 12},
		msg: tierMessages{
			perfect:  "Perfect melodic span!",
			goodHigh: "Similar to reference ({ref})",
			goodLow:  "Similar to reference ({ref})",
			warnHigh: "Wider/more dramatic. Try: tighter melodic range (reference: {ref})",
			warnLow:  "Narrower/less dynamic. Try: bigger interval jumps (reference: {ref})",
			critHigh: "Too wide! Melodic simplification needed (reference: {ref})",
			critLow:  "Too narrow/monotonous! Expand melody (reference: {ref})",
		},
	},
	"rhythmic_density": {
		label: "Rhythmic Density", unit: " events/s", prec: 1, scale: scaleRelative, bands: relativeGrades,
		msg: tierMessages{
			perfect:  "Perfect rhythmic busyness!",
			goodHigh: "Similar to reference ({ref})",
			goodLow:  "Similar to reference ({ref})",
			warnHigh: "Busier rhythm. Try: remove elements, simplify drums (reference: {ref})",
			warnLow:  "Sparser rhythm. Try: add hi-hats, percussion (reference: {ref})",
			critHigh: "Way too busy/cluttered! Major simplification (reference: {ref})",
			critLow:  "Too sparse/empty! Add rhythmic elements (reference: {ref})",
		},
	},
	"arrangement_density": {
		label: "Arrangement Density", prec: 2, scale: scaleRelative, bands: relativeGrades,
		msg: tierMessages{
			perfect:  "Perfect build-up dynamics!",
			goodHigh: "Similar variation to reference ({ref})",
			goodLow:  "Similar variation to reference ({ref})",
			warnHigh: "More dynamic changes. Try: smoother transitions (reference: {ref})",
			warnLow:  "Flatter arrangement. Try: add build-ups, drops (reference: {ref})",
			critHigh: "Too dramatic! Smooth out intensity changes (reference: {ref})",
			critLow:  "Too static! Add verse/chorus contrast (reference: {ref})",
		},
	},
	"repetition_score": {
		label: "Repetition Score", prec: 2, scale: scaleRelative, bands: relativeGrades,
		msg: tierMessages{
			perfect:  "Perfect hook repetition!",
			goodHigh: "Similar to reference ({ref})",
			goodLow:  "Similar to reference ({ref})",
			warnHigh: "More repetitive. Try: add variations to hook (reference: {ref})",
			warnLow:  "Less repetitive. Try: repeat hook more often (reference: {ref})",
			critHigh: "Too repetitive/boring! Add melodic variations (reference: {ref})",
			critLow:  "Not catchy enough! Repeat hooks more (reference: {ref})",
		},
	},
	"frequency_occupancy": {
		label: "Frequency Occupancy", unit: " Hz", scale: scaleRelative, bands: relativeGrades,
		msg: tierMessages{
			perfect:  "Perfect frequency center!",
			goodHigh: "Similar to reference ({ref} Hz)",
			goodLow:  "Similar to reference ({ref} Hz)",
			warnHigh: "Higher frequency focus. Try: add bass elements (reference: {ref} Hz)",
			warnLow:  "Lower frequency focus. Try: add brightness, transpose up (reference: {ref} Hz)",
			critHigh: "Too bright! Add bass/warmth significantly (reference: {ref} Hz)",
			critLow:  "Too dark! Major high-frequency boost needed (reference: {ref} Hz)",
		},
	},
	"timbral_diversity": {
		label: "Timbral Diversity", prec: 2, scale: scaleRelative, bands: relativeGrades,
		msg: tierMessages{
			perfect:  "Perfect texture variety!",
			goodHigh: "Similar to reference ({ref})",
			goodLow:  "Similar to reference ({ref})",
			warnHigh: "More variety. Try: simplify sound palette (reference: {ref})",
			warnLow:  "Less variety. Try: add different instruments/textures (reference: {ref})",
			critHigh: "Too many sounds! Simplify arrangement drastically (reference: {ref})",
			critLow:  "Too monotonous! Add significantly more instruments (reference: {ref})",
		},
	},
	"vocal_instrumental_ratio": {
		label: "Vocal/Instrumental", prec: 2, scale: scaleRelative, bands: relativeGrades,
		msg: tierMessages{
			perfect:  "Perfect vocal balance!",
			goodHigh: "Similar to reference ({ref})",
			goodLow:  "Similar to reference ({ref})",
			warnHigh: "More vocal presence. Try: add instrumental sections (reference: {ref})",
			warnLow:  "More instrumental. Try: add vocal sections, ad-libs (reference: {ref})",
			critHigh: "Way too vocal-heavy! Add instrumental bridges (reference: {ref})",
			critLow:  "Too instrumental! Needs more vocals (reference: {ref})",
		},
	},
	"energy_curve": {
		label: "Energy Curve", prec: 2, scale: scaleRelative, bands: relativeGrades,
		msg: tierMessages{
			perfect:  "Perfect energy flow!",
			goodHigh: "Similar to reference ({ref})",
			goodLow:  "Similar to reference ({ref})",
			warnHigh: "More dynamic energy. Try: flatten chorus/verse contrast (reference: {ref})",
			warnLow:  "Flatter energy. Try: add build-ups, make chorus punchier (reference: {ref})",
			critHigh: "Too dramatic! Smooth out energy changes (reference: {ref})",
			critLow:  "Too flat/boring! Add verse/chorus dynamics (reference: {ref})",
		},
	},
	"call_response_presence": {
		label: "Call-Response", prec: 2, scale: scaleRelative, bands: relativeGrades,
		msg: tierMessages{
			perfect:  "Perfect musical dialogue!",
			goodHigh: "Similar to reference ({ref})",
			goodLow:  "Similar to reference ({ref})",
			warnHigh: "More back-and-forth. Try: make phrases more continuous (reference: {ref})",
			warnLow:  "Less dialogue. Try: add answering phrases, echos (reference: {ref})",
			critHigh: "Too repetitive! Make phrases more continuous (reference: {ref})",
			critLow:  "No catchiness! Add call-response patterns (reference: {ref})",
		},
	},
}

// compareOrder fixes the verdict sequence after the overall score.
var compareOrder = []string{
	"bpm",
	"key",
	"key_confidence",
	"energy",
	"loudness",
	"spectral_centroid",
	"spectral_rolloff",
	"spectral_flatness",
	"spectral_contrast",
	"low_energy",
	"mid_energy",
	"high_energy",
	"sub_bass_presence",
	"dynamic_range",
	"rms",
	"loudness_range",
	"true_peak",
	"crest_factor",
	"danceability",
	"beat_strength",
	"valence",
	"stereo_width",
	"transient_energy",
	"harmonic_to_noise_ratio",
	"harmonic_complexity",
	"melodic_range",
	"rhythmic_density",
	"arrangement_density",
	"repetition_score",
	"frequency_occupancy",
	"timbral_diversity",
	"vocal_instrumental_ratio",
	"energy_curve",
	"call_response_presence",
}

// scoreFeatures are the numeric features feeding the overall match score.
// Categorical values, confidence scores and zero_crossing_rate stay out.
var scoreFeatures = []string{
	"bpm", "energy", "loudness", "spectral_centroid", "rms",
	"spectral_rolloff", "spectral_flatness", "spectral_contrast", "dynamic_range",
	"danceability", "beat_strength", "valence", "stereo_width",
	"low_energy", "mid_energy", "high_energy", "sub_bass_presence",
	"loudness_range", "true_peak", "crest_factor", "transient_energy", "harmonic_to_noise_ratio",
	"harmonic_complexity", "melodic_range", "rhythmic_density", "arrangement_density",
	"repetition_score", "frequency_occupancy", "timbral_diversity", "vocal_instrumental_ratio",
	"energy_curve", "call_response_presence",
}
