package cmd

import "github.com/pterm/pterm"

type Progresser interface {
	Increment()
	Stop()
}

type progresser struct {
	pbar *pterm.ProgressbarPrinter
}

func newProgresser(total int) *progresser {
	if total == 0 || global.quiet {
		return &progresser{}
	}
	pbar, _ := pterm.DefaultProgressbar.WithTotal(total).WithTitle("Decoding folders").Start()
	return &progresser{
		pbar: pbar,
	}
}

func (p *progresser) Increment() {
	if p.pbar == nil {
		return
	}
	p.pbar.Increment()
}

func (p *progresser) Stop() {
	if p.pbar == nil {
		return
	}
	_, _ = p.pbar.Stop()
}
