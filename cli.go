package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-faster/jx"

	"c64mem/emu"
	"c64mem/emu/log"
	"c64mem/hw"
	"c64mem/hw/hwdefs"
	"c64mem/prg"
)

type CLI struct {
	Memmap   Memmap   `cmd:"" help:"Print the bank decode table for a latch value."`
	PrgInfos PrgInfos `cmd:"" name:"prg-infos" help:"Show PRG file infos."`
	Dump     Dump     `cmd:"" help:"Boot a machine and dump a memory window."`
	Version  Version  `cmd:"" help:"Show c64mem version."`

	Log logModMask `help:"Enable debug logging for specified modules." placeholder:"mod0,mod1,..."`
}

type logModMask struct {
	mask log.ModuleMask
}

func (f *logModMask) UnmarshalText(text []byte) error {
	for _, name := range strings.Split(string(text), ",") {
		if name == "all" {
			f.mask |= log.ModuleMaskAll
			continue
		}
		mod, found := log.ModuleByName(name)
		if !found {
			return fmt.Errorf("unknown log module %q", name)
		}
		f.mask |= mod.Mask()
	}
	return nil
}

type Memmap struct {
	Latch *uint8 `help:"Latch value (0-7). All 8 when omitted."`
	JSON  bool   `help:"JSON output."`
}

func latchBits(v uint8) string {
	var bits []string
	if v&hwdefs.LORAM != 0 {
		bits = append(bits, "LORAM")
	}
	if v&hwdefs.HIRAM != 0 {
		bits = append(bits, "HIRAM")
	}
	if v&hwdefs.CHAREN != 0 {
		bits = append(bits, "CHAREN")
	}
	if len(bits) == 0 {
		return "-"
	}
	return strings.Join(bits, "|")
}

func (c *Memmap) Run() error {
	var latches []uint8
	if c.Latch != nil {
		if *c.Latch&^hwdefs.LatchMask != 0 {
			return fmt.Errorf("latch value %d out of range (0-7)", *c.Latch)
		}
		latches = []uint8{*c.Latch}
	} else {
		for v := uint8(0); v < 8; v++ {
			latches = append(latches, v)
		}
	}

	var bc hw.BankController
	if c.JSON {
		var e jx.Encoder
		e.Arr(func(e *jx.Encoder) {
			for _, v := range latches {
				bc.Configure(v)
				basic, kernal, charen := bc.Banks()
				e.Obj(func(e *jx.Encoder) {
					e.Field("latch", func(e *jx.Encoder) { e.Int(int(v)) })
					e.Field("bits", func(e *jx.Encoder) { e.Str(latchBits(v)) })
					e.Field("basic", func(e *jx.Encoder) { e.Str(basic.String()) })
					e.Field("kernal", func(e *jx.Encoder) { e.Str(kernal.String()) })
					e.Field("charen", func(e *jx.Encoder) { e.Str(charen.String()) })
				})
			}
		})
		fmt.Println(e.String())
		return nil
	}

	for _, v := range latches {
		bc.Configure(v)
		basic, kernal, charen := bc.Banks()
		fmt.Printf("latch %d (%-19s) basic=%-3s kernal=%-3s charen=%-3s\n",
			v, latchBits(v), basic, kernal, charen)
	}
	return nil
}

type PrgInfos struct {
	Path string `arg:"" name:"/path/to/prg" type:"existingfile"`
}

func (c *PrgInfos) Run() error {
	p, err := prg.Open(c.Path)
	if err != nil {
		return err
	}
	fmt.Printf("load address: $%04X\n", p.LoadAddr)
	fmt.Printf("size:         %d bytes\n", len(p.Data))
	fmt.Printf("end address:  $%04X\n", p.End())
	return nil
}

type Dump struct {
	Config string `help:"Machine config file." required:"" type:"existingfile"`
	Addr   uint16 `help:"First address of the window." default:"0x0400"`
	Length uint32 `help:"Window length in bytes." default:"256"`
	NoIO   bool   `help:"Bypass bank decode and peripherals, dump RAM." name:"no-io"`
	JSON   bool   `help:"JSON output."`
}

func (c *Dump) Run() error {
	cfg, err := emu.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	mach, err := emu.PowerUp(cfg)
	if err != nil {
		return err
	}

	buf := make([]byte, c.Length)
	for i := range buf {
		addr := c.Addr + uint16(i)
		if c.NoIO {
			buf[i] = mach.Mem.Peek8(addr)
		} else {
			buf[i] = mach.Mem.Read8(addr)
		}
	}

	if c.JSON {
		var e jx.Encoder
		e.Obj(func(e *jx.Encoder) {
			e.Field("addr", func(e *jx.Encoder) { e.Int(int(c.Addr)) })
			e.Field("latch", func(e *jx.Encoder) { e.Int(int(mach.Mem.Banks().Latch())) })
			e.Field("data", func(e *jx.Encoder) { e.Base64(buf) })
		})
		fmt.Println(e.String())
		return nil
	}

	for i := 0; i < len(buf); i += 16 {
		end := min(i+16, len(buf))
		fmt.Printf("%04X  % 02X\n", c.Addr+uint16(i), buf[i:end])
	}
	return nil
}

type Version struct{}

const version = "0.1.0"

func (Version) Run() error {
	fmt.Fprintln(os.Stdout, "c64mem", version)
	return nil
}
