package screens

// chrome holds the banner and notice slots every screen carries.
type chrome struct {
	banner string
	notice string
}

func (c *chrome) SetBanner(msg string) { c.banner = msg }
func (c *chrome) SetNotice(msg string) { c.notice = msg }

// clearMessages drops stale messages once the user presses another key.
func (c *chrome) clearMessages() {
	c.banner = ""
	c.notice = ""
}
