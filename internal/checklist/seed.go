package checklist

import "github.com/sandeepkv93/backalley/internal/model"

// DefaultSections is the Omni Arena shift checklist.
func DefaultSections() []model.Section {
	return []model.Section{
		{
			Kind:  model.SectionOpening,
			Title: "Night Opening Prep",
			Tasks: []model.Task{
				model.NewTask(model.SectionOpening, "10:30–10:45 AM", "Power on Omni Arena",
					"Flip both switches inside the computer cabinet at the same time."),
				model.NewTask(model.SectionOpening, "", "Prep controllers & trackers",
					"Place every hand controller and tracker in its charger and power them on."),
				model.NewTask(model.SectionOpening, "", "Clean and polish bases",
					"Spray bases with Omni water + soap, wipe with black towels, then apply 5 drops of EASY-WALK using the polishing pad per base."),
				model.NewTask(model.SectionOpening, "", "Detail headsets",
					"Clean HMD lenses with microfiber, sanitize foam face/back covers, and verify cables are routed through the rear strain relief."),
				model.NewTask(model.SectionOpening, "", "Wipe touchpoints",
					"Clean Omni touchscreens with alcohol wipes or Windex and windows with Omni soap solution only (no other cleaners)."),
				model.NewTask(model.SectionOpening, "", "Tidy play area",
					"Sweep or mop the floor, then dust interior/exterior walls with microfiber towels. Flag Gregory if supplies are running low."),
			},
		},
		{
			Kind:  model.SectionHourly,
			Title: "Hourly Walkthrough",
			Tasks: []model.Task{
				model.NewTask(model.SectionHourly, "1:00 PM", "Refresh waiting area",
					"Swiffer floors, clean benches, wipe display screens, and store all Omni shoes neatly."),
				model.NewTask(model.SectionHourly, "3:00 PM", "Sanitize stations",
					"Wipe all four Omni stations with the approved cleaning solution."),
				model.NewTask(model.SectionHourly, "5:00 PM", "Entry tidy-up",
					"Sweep outside the Omni near pinball & front doors, then vacuum rugs with the corded vacuum."),
				model.NewTask(model.SectionHourly, "6:00 PM", "Detail cubbies & shoes",
					"Use handheld vacuum, rag, and glass cleaner to clear cubbies and dust the bottom of every shoe."),
				model.NewTask(model.SectionHourly, "7:00 PM", "Polish glass & exterior",
					"Lightly spray a microfiber rag to clean inside/outside windows by the benches and dust the Omni exterior."),
				model.NewTask(model.SectionHourly, "8:00 PM", "Pinball touch-up",
					"Use the glass rag only (no extra spray) to wipe each pinball machine playfield."),
				model.NewTask(model.SectionHourly, "9:00 PM", "Pre-close floor sweep",
					"Vacuum in front of the Omni (pinballs + new door) and sweep inside/outside the arena."),
			},
		},
		{
			Kind:     model.SectionClosing,
			Title:    "Closing Procedures",
			Subtitle: "Start at 10 PM (Tue–Thu) or 11 PM (Fri–Sat).",
			Tasks: []model.Task{
				model.NewTask(model.SectionClosing, "10:00 PM Tue–Thu / 11:00 PM Fri–Sat", "Power down gear",
					"Turn off all controllers and trackers, placing each set inside the matching corner cabinets."),
				model.NewTask(model.SectionClosing, "", "Reset footwear & seating",
					"Clean every shoe, return pairs to their spots, and wipe down seats."),
				model.NewTask(model.SectionClosing, "", "Dry mop & vacuum",
					"Dry mop the entire Omni floor and station pads, then vacuum station mats and the front rug."),
				model.NewTask(model.SectionClosing, "", "Final floor pass",
					"Swiffer all non-station floors for a clean finish."),
				model.NewTask(model.SectionClosing, "", "Trash & shutdown",
					"Empty the trash can and close the arena entrance with the station belt plus standee."),
			},
		},
	}
}

func DefaultCatalog() *Catalog {
	return MustCatalog(DefaultSections()...)
}
