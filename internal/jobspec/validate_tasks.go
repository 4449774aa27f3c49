package jobspec

import (
	"fmt"
	"strings"
)

// validateTasks reads task entries and rejects empty lists and duplicate ids.
func validateTasks(root *object, add issueAdder) []TaskEntry {
	items, ok := root.list("tasks", true)
	if !ok {
		return nil
	}
	if len(items) == 0 {
		add("tasks", "must include at least one entry")
		return nil
	}

	tasks := make([]TaskEntry, 0, len(items))
	taskIDs := map[string]struct{}{}
	for i, item := range items {
		obj := root.element(itemPath("tasks", i), item)
		if obj == nil {
			continue
		}
		task := TaskEntry{ID: obj.requiredString("id")}
		if fewshot := obj.requiredInt("fewshot"); fewshot != nil {
			checkNonNegative(obj.field("fewshot"), fewshot, add)
			task.Fewshot = *fewshot
		}
		task.Params = obj.mapping("params")
		obj.skipUnknown()

		if id := strings.TrimSpace(task.ID); id != "" {
			if _, exists := taskIDs[id]; exists {
				add("tasks.id", fmt.Sprintf("duplicate id %q", id))
			} else {
				taskIDs[id] = struct{}{}
			}
		}
		tasks = append(tasks, task)
	}
	return tasks
}

// validatePlugins reads the optional custom plugin list.
func validatePlugins(root *object) []CustomPlugin {
	items, ok := root.list("custom_plugins", false)
	if !ok {
		return nil
	}
	plugins := make([]CustomPlugin, 0, len(items))
	for i, item := range items {
		obj := root.element(itemPath("custom_plugins", i), item)
		if obj == nil {
			continue
		}
		plugins = append(plugins, CustomPlugin{
			Name:    obj.requiredString("name"),
			Version: obj.requiredString("version"),
		})
		obj.skipUnknown()
	}
	return plugins
}
