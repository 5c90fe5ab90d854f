package importer

// Stage identifies a phase of the import pipeline. Stages are visited in
// the fixed order parsing, extracting, converting, finalizing.
type Stage string

const (
	StageParsing    Stage = "parsing"
	StageExtracting Stage = "extracting"
	StageConverting Stage = "converting"
	StageFinalizing Stage = "finalizing"
)

// Progress is a one-shot notification value describing how far an import
// has come. CurrentSlide/TotalSlides are set only for per-slide steps.
type Progress struct {
	Stage        Stage  `json:"stage"`
	Percent      int    `json:"progress"`
	Message      string `json:"message"`
	CurrentSlide int    `json:"currentSlide,omitempty"`
	TotalSlides  int    `json:"totalSlides,omitempty"`
}

// ProgressFunc receives progress notifications for one import call. It is
// passed explicitly per call; the importer keeps no callback state across
// calls.
type ProgressFunc func(Progress)

// emitter clamps percentages to [0,100] and keeps them monotonically
// non-decreasing across one import.
type emitter struct {
	fn   ProgressFunc
	last int
}

func newEmitter(fn ProgressFunc) *emitter {
	return &emitter{fn: fn}
}

func (e *emitter) emit(stage Stage, percent int, msg string, current, total int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	if percent < e.last {
		percent = e.last
	}
	e.last = percent

	if e.fn == nil {
		return
	}
	e.fn(Progress{
		Stage:        stage,
		Percent:      percent,
		Message:      msg,
		CurrentSlide: current,
		TotalSlides:  total,
	})
}

// lerp interpolates a per-slide step into the [from,to] percent range.
func lerp(from, to, done, total int) int {
	if total <= 0 {
		return to
	}
	return from + (to-from)*done/total
}
