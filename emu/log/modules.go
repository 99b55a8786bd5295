// Package log implements module-based logging on top of logrus. Each
// subsystem logs through its own module; debug output is only emitted
// for modules present in the debug mask, so hot paths stay silent (and
// cheap) unless explicitly enabled.
package log

import (
	"gopkg.in/Sirupsen/logrus.v0"
)

type ModuleMask uint64
type Module uint

const ModuleMaskAll ModuleMask = 0xFFFFFFFFFFFFFFFF

// Standard modules of the memory core. Extra modules can be registered
// with NewModule.
const (
	ModEmu Module = iota + 1
	ModMem
	ModBank
	ModIO
	ModVIC
	ModPatch

	endStandardMods
)

var modCount = endStandardMods

var modNames = []string{
	"<error>", "emu", "mem", "bank", "io", "vic", "patch",
}

var modDebugMask ModuleMask = 0

func NewModule(name string) Module {
	mod := modCount
	modCount++
	modNames = append(modNames, name)
	return mod
}

func ModuleByName(name string) (Module, bool) {
	for idx, s := range modNames {
		if s == name {
			return Module(idx), true
		}
	}
	return Module(0xFFFFFFFF), false
}

func EnableDebugModules(mask ModuleMask) {
	modDebugMask |= mask
	logrus.SetLevel(logrus.DebugLevel)
}

func DisableDebugModules(mask ModuleMask) {
	modDebugMask &^= mask
}

func (mod Module) Mask() ModuleMask {
	return 1 << ModuleMask(mod)
}

func (mod Module) Enabled(level Level) bool {
	return level <= WarnLevel || modDebugMask&mod.Mask() != 0
}

type Level uint8

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
)
