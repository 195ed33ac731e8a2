package main

import (
	"fmt"

	"github.com/jongio/konsole/konsole"
	"github.com/jongio/konsole/terminal"
	"github.com/spf13/cobra"
)

func newBasicsCmd(k *konsole.Konsole) *cobra.Command {
	return &cobra.Command{
		Use:   "basics",
		Short: "Write text in a range of colors",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runBasics(k)
		},
	}
}

func runBasics(k *konsole.Konsole) {
	k.WriteLine("Sample 1: The Basics").WriteDivider('-')
	k.WriteLine("1. Text with default colors.")
	k.WithForeColor(terminal.Cyan).WriteLine("2. Cyan text on the default background color")
	k.WithBackColor(terminal.Blue).WriteLine("3. Default text color on a blue background")
	k.WithColors(terminal.Black, terminal.Red).WriteLine("4. Black text on a red background")

	k.SetForegroundColor(terminal.Red).SetBackgroundColor(terminal.Yellow)
	k.WriteLine("5. Default text color is now red and default background is now yellow")
	k.WithForeColor(terminal.Green).WriteLine("6. Green text with the new default yellow background")

	k.ResetColors().WriteLine("\nSample 2: Ice Cream Menu")
	k.WithForeColor(terminal.Green).
		WriteDivider('-').
		WriteLine("Sunny's Ice Cream Shop").
		WriteDivider('-')
	k.WithForeColor(terminal.Cyan).WriteLine("These are your options:")
	k.WithForeColor(terminal.White).WriteLine("   1. Vanilla")
	k.WithForeColor(terminal.DarkMagenta).WriteLine("   2. Chocolate")
	k.WithForeColor(terminal.Red).WriteLine("   3. Strawberry")

	k.WriteLine("\nSample 3: Levels").WriteDivider('-')
	k.Info("Info text").Debug("Debug text").Warn("Warning text").Error("Error text")

	k.WriteLine("\nSample 4: Streamed Output").WriteDivider('-')
	w := konsole.NewLineWriter(k, k.Defaults().Debug)
	_, _ = fmt.Fprint(w, "Lines written in\npieces are ")
	_, _ = fmt.Fprint(w, "joined before they are shown")
	w.Flush()
}
