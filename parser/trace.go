package parser

import (
	log "github.com/sirupsen/logrus"
)

// trace logs entry into a grammar rule.
func (p *Parser) trace(rule string) {
	if p.log == nil {
		return
	}
	p.log.WithFields(log.Fields{
		"rule":   rule,
		"offset": p.current.Pos.Offset,
		"token":  p.current.Token.String(),
		"depth":  p.depth,
	}).Debug("enter rule")
}

// traceRewind logs a failed alternative that is being retried.
func (p *Parser) traceRewind(rule string, err *ParseError) {
	if p.log == nil || err == nil {
		return
	}
	p.log.WithFields(log.Fields{
		"rule":   rule,
		"offset": err.Pos.Offset,
		"code":   err.Code,
	}).Debug("alternative failed, rewinding")
}

func (p *Parser) debugFailure(err *ParseError) {
	if p.log == nil {
		return
	}
	p.log.WithFields(log.Fields{
		"offset": err.Pos.Offset,
		"line":   err.Pos.Line,
		"column": err.Pos.Column,
		"code":   err.Code,
		"kind":   err.Kind.String(),
	}).Debug(err.Message)
}
