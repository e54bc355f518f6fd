package switcher

import (
	"errors"
	"fmt"
	"log"

	"claude-switch/internal/config"
	"claude-switch/internal/journal"
	"claude-switch/internal/utils"
)

// Phase is a step of a single Apply call.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseConfirming
	PhaseBackingUp
	PhaseWritingTemp
	PhaseReplacing
	PhaseDone
	PhaseCancelled
	PhaseFailed
)

var phaseNames = map[Phase]string{
	PhaseIdle:        "idle",
	PhaseConfirming:  "confirming",
	PhaseBackingUp:   "backing up",
	PhaseWritingTemp: "writing temp file",
	PhaseReplacing:   "replacing",
	PhaseDone:        "done",
	PhaseCancelled:   "cancelled",
	PhaseFailed:      "failed",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// ApplyResult reports how far an Apply call got.
type ApplyResult struct {
	Profile string
	Phase   Phase
	// FailedAt is the phase that failed when Phase is PhaseFailed.
	FailedAt   Phase
	BackupPath string
	// BackupErr is set when the snapshot failed; the switch still proceeds.
	BackupErr error
}

// Apply makes name the live profile.
//
// The switch only happens after confirm approves it; a nil confirm declines.
// A failed backup is logged and does not stop the switch. A failed write
// leaves the live settings file exactly as it was.
func (s *Switcher) Apply(name string, confirm ConfirmFunc) (ApplyResult, error) {
	res := ApplyResult{Profile: name, Phase: PhaseIdle}

	s.store.Refresh()
	target, ok := s.store.Get(name)
	if !ok {
		return res, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	res.Phase = PhaseConfirming
	before, _ := s.ActiveSettings()
	profile := config.Profile{Name: name, Settings: target}
	if confirm == nil || !confirm(profile, config.Diff(before, target)) {
		res.Phase = PhaseCancelled
		s.record(res, "")
		return res, ErrCancelled
	}

	res.Phase = PhaseBackingUp
	if s.backups != nil {
		path, err := s.backups.Snapshot()
		res.BackupPath = path
		if err != nil {
			res.BackupErr = err
			log.Printf("switcher: backup failed, continuing: %v", err)
		}
	}

	res.Phase = PhaseWritingTemp
	data, err := target.Encode()
	if err != nil {
		return s.fail(res, PhaseWritingTemp, fmt.Errorf("failed to encode %s: %w", name, err))
	}
	if err := s.write(s.active.Path(), data, config.SettingsFileMode); err != nil {
		failedAt := PhaseWritingTemp
		var werr *utils.WriteError
		if errors.As(err, &werr) && werr.Replacing() {
			failedAt = PhaseReplacing
		}
		return s.fail(res, failedAt, fmt.Errorf("failed to apply %s: %w", name, err))
	}

	res.Phase = PhaseDone
	s.current = name
	s.record(res, "")
	return res, nil
}

func (s *Switcher) fail(res ApplyResult, at Phase, err error) (ApplyResult, error) {
	res.Phase = PhaseFailed
	res.FailedAt = at
	s.record(res, err.Error())
	return res, err
}

func (s *Switcher) record(res ApplyResult, detail string) {
	if s.journal == nil {
		return
	}
	outcome := journal.OutcomeApplied
	switch res.Phase {
	case PhaseCancelled:
		outcome = journal.OutcomeCancelled
	case PhaseFailed:
		outcome = journal.OutcomeFailed
	}
	if detail == "" && res.BackupErr != nil {
		detail = "backup failed: " + res.BackupErr.Error()
	}
	err := s.journal.Record(journal.Entry{
		Profile:    res.Profile,
		Outcome:    outcome,
		BackupPath: res.BackupPath,
		Detail:     detail,
	})
	if err != nil {
		log.Printf("switcher: failed to record switch: %v", err)
	}
}
