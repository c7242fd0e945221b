package main

type VersionCommand struct {
	*Container
}

func (c *VersionCommand) Synopsis() string { return "Print the formkit version" }

func (c *VersionCommand) Help() string { return "Usage: formkit version" }

func (c *VersionCommand) Run(_ []string) int {
	c.UI.Output("formkit " + Version)
	return 0
}
