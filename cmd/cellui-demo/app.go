package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/germtb/cellui"
	"github.com/germtb/gox"
)

const projectURL = "https://github.com/germtb/cellui"

type demo struct {
	sched *cellui.Scheduler

	name    *cellui.InputField
	amount  *cellui.DecimalInputField
	history *cellui.Scroll
	entries int
}

func (d *demo) App(props gox.Props) gox.VNode {
	return gox.Element("container", gox.Props{
		"columns":     "[grow, fill]",
		"rows":        "[][grow, fill][]",
		"border":      1,
		"borderStyle": "rounded",
		"borderColor": "cornflowerblue",
		"padding":     map[string]any{"left": 1, "right": 1},
		"debug":       props["debug"],
	},
		gox.Element("label", gox.Props{"align": "center", "color": "cyan"}, gox.Text("cellui demo")),
		gox.Element(cellui.WrapElement, nil),
		gox.Element("container", gox.Props{
			"columns":   "[][][grow, fill]",
			"rows":      "[grow, fill]",
			"marginTop": 1,
		},
			gox.Element(gox.Component(d.Form), nil),
			gox.Element("spacer", gox.Props{"width": 2}),
			gox.Element("scroll", gox.Props{
				"ref":                func(c cellui.Component) { d.history = c.(*cellui.Scroll) },
				"container":          "wrap1",
				"columns":            "[grow, fill]",
				"width":              32,
				"height":             8,
				"horizontalBar":      false,
				"focusedBorderColor": "yellow",
			},
				gox.Element("label", gox.Props{"color": "dimgray"}, gox.Text("submitted entries appear here")),
			),
		),
		gox.Element(cellui.WrapElement, nil),
		gox.Element(gox.Component(d.Toolbar), nil),
	)
}

func (d *demo) Form(props gox.Props) gox.VNode {
	return gox.Element("container", gox.Props{
		"container": "wrap2",
		"columns":   "[right][]",
	},
		gox.Element("label", nil, gox.Text("Name ")),
		gox.Element("input", gox.Props{
			"ref":            func(c cellui.Component) { d.name = c.(*cellui.InputField) },
			"preferredWidth": 16,
			"maxLength":      24,
			"constraints":    "fillx",
		}),
		gox.Element("label", gox.Props{"marginTop": 1}, gox.Text("Amount ")),
		gox.Element("input", gox.Props{
			"ref":            func(c cellui.Component) { d.amount = c.(*cellui.DecimalInputField) },
			"decimal":        true,
			"preferredWidth": 10,
			"marginTop":      1,
			"constraints":    "left",
		}),
	)
}

func (d *demo) Toolbar(props gox.Props) gox.VNode {
	return gox.Element("container", gox.Props{
		"columns":   "[][][][][grow, right]",
		"marginTop": 1,
	},
		gox.Element("button", gox.Props{"onClick": d.submit, "hotkey": "s"}, gox.Text("(S)ubmit")),
		gox.Element("button", gox.Props{"onClick": d.rename, "hotkey": "r", "marginLeft": 1}, gox.Text("(R)ename")),
		gox.Element("button", gox.Props{"onClick": d.clear, "variant": "label", "hotkey": "x", "marginLeft": 1}, gox.Text("Clear (X)")),
		gox.Element("link", gox.Props{"href": projectURL, "marginLeft": 1}, gox.Text("docs")),
		gox.Element("label", gox.Props{
			"textFunc": func() string { return time.Now().Format("15:04:05") },
			"color":    "dimgray",
		}),
	)
}

// submit runs under the scheduler lock; the popup waits on a goroutine.
func (d *demo) submit() {
	name := d.name.Text
	amount, err := d.amount.Decimal()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid amount:", err)
		return
	}
	if name == "" {
		name = "anonymous"
	}

	summary := fmt.Sprintf("Add %.2f for %s?", amount, name)
	go func() {
		if !cellui.ShowConfirm(d.sched, cellui.NewLabel(summary)) {
			fmt.Println("submission cancelled")
			return
		}
		d.sched.Update(func() { d.addEntry(name, amount) })
		fmt.Printf("added %.2f for %s\n", amount, name)
	}()
}

func (d *demo) addEntry(name string, amount float64) {
	if d.entries == 0 {
		d.history.RemoveAll()
	}
	d.entries++
	color := "\x1b[32m"
	if amount == 0 {
		color = "\x1b[90m"
	}
	line := fmt.Sprintf("%3d  %-16s %s%8.2f\x1b[0m", d.entries, name, color, amount)
	d.history.MustAdd(cellui.NewAnsiLabel(line), "")
	d.name.Text = ""
	d.amount.Text = ""
}

func (d *demo) rename() {
	go func() {
		text, ok := cellui.ShowInput(d.sched, "New name:")
		if !ok {
			return
		}
		d.sched.Update(func() { d.name.Text = text })
	}()
}

func (d *demo) clear() {
	d.history.RemoveAll()
	d.entries = 0
	fmt.Println("history cleared")
}

// tickClock redraws once a second so the clock label stays current.
func (d *demo) tickClock(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-d.sched.Done():
			return
		case <-ticker.C:
			d.sched.Invalidate()
		}
	}
}
