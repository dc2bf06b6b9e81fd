package inmemory

import "sync"

type Snapshot struct {
	ActionTotal     uint64            `json:"action_total"`
	ActionSuccess   uint64            `json:"action_success"`
	ActionRejected  uint64            `json:"action_rejected"`
	ByAction        map[string]uint64 `json:"by_action"`
	DecayTicks      uint64            `json:"decay_ticks"`
	DehydratedTicks uint64            `json:"dehydrated_ticks"`
	PersistFailures uint64            `json:"persist_failures"`
	FailuresByOp    map[string]uint64 `json:"failures_by_op"`
}

type Recorder struct {
	mu         sync.Mutex
	success    uint64
	rejected   uint64
	byAction   map[string]uint64
	ticks      uint64
	dehydrated uint64
	failures   map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byAction: map[string]uint64{},
		failures: map[string]uint64{},
	}
}

func (r *Recorder) RecordAction(action string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !ok {
		r.rejected++
		return
	}
	r.success++
	r.byAction[action]++
}

func (r *Recorder) RecordDecayTick(dehydrated bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ticks++
	if dehydrated {
		r.dehydrated++
	}
}

func (r *Recorder) RecordPersistFailure(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures[op]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ActionSuccess:   r.success,
		ActionRejected:  r.rejected,
		ActionTotal:     r.success + r.rejected,
		ByAction:        make(map[string]uint64, len(r.byAction)),
		DecayTicks:      r.ticks,
		DehydratedTicks: r.dehydrated,
		FailuresByOp:    make(map[string]uint64, len(r.failures)),
	}
	for k, v := range r.byAction {
		out.ByAction[k] = v
	}
	for k, v := range r.failures {
		out.FailuresByOp[k] = v
		out.PersistFailures += v
	}
	return out
}
