package st7735

// ST7735 command set, the subset this driver issues. The addressing trio
// (CASET/RASET/RAMWR) is a wire-format contract shared with the simulator.
const (
	SLPOUT   = 0x11 // sleep out, booster on
	DISPON   = 0x29 // display on
	CASET    = 0x2A // column address set
	RASET    = 0x2B // row address set
	RAMWR    = 0x2C // memory write
	MADCTL   = 0x36 // memory data access control
	COLMOD   = 0x3A // interface pixel format
	FRMCTR1  = 0xB1 // frame rate, normal mode
	FRMCTR2  = 0xB2 // frame rate, idle mode
	FRMCTR3  = 0xB3 // frame rate, partial mode
	INVCTR   = 0xB4 // display inversion control
	PWCTR1   = 0xC0 // power control 1
	PWCTR2   = 0xC1 // power control 2
	PWCTR3   = 0xC2 // power control 3, normal mode
	PWCTR4   = 0xC3 // power control 4, idle mode
	PWCTR5   = 0xC4 // power control 5, partial mode
	VMCTR1   = 0xC5 // VCOM control 1
	GAMCTRP1 = 0xE0 // gamma adjust, positive polarity
	GAMCTRN1 = 0xE1 // gamma adjust, negative polarity
)

// Panel geometry. The visible 128x128 glass sits at a fixed offset inside
// the controller's frame memory, so every address carries these offsets.
const (
	PanelWidth  = 128
	PanelHeight = 128

	ColumnOffset = 2
	RowOffset    = 1
)

// RGB444 wire values for a monochrome sample. These are protocol
// constants, not tunable colors: a set framebuffer bit is ink (black).
const (
	PixelOn  uint16 = 0x000
	PixelOff uint16 = 0xFFF
)
