package httpapi

import (
	"fmt"
	"strings"

	"github.com/groceryworks/listd/internal/app/domain/item"
)

// Plain-text response rendering. Every body the API produces is assembled
// here so the exact wording lives in one place.

const (
	emptyListMessage    = "📝 Your shopping list is empty."
	nowEmptyListMessage = "📝 Your shopping list is now empty."
)

func renderBullets(items []item.Item) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = "• " + it.Name
	}
	return strings.Join(lines, "\n")
}

func renderWelcome(serviceName, version string) string {
	return fmt.Sprintf("🛒 Welcome to %s\n📄 Documentation: /docs\n🔢 Version: %s", serviceName, version)
}

func renderAdded(added item.Item, items []item.Item) string {
	return fmt.Sprintf("✅ Item '%s' added to the list.\n\n🛒 Current Shopping List:\n%s",
		added.Name, renderBullets(items))
}

func renderList(items []item.Item) string {
	if len(items) == 0 {
		return emptyListMessage
	}
	return fmt.Sprintf("🛒 Shopping List (%d items):\n%s", len(items), renderBullets(items))
}

func renderRemoved(removed item.Item, remaining []item.Item) string {
	if len(remaining) == 0 {
		return fmt.Sprintf("🗑️ Item '%s' removed.\n\n%s", removed.Name, nowEmptyListMessage)
	}
	return fmt.Sprintf("🗑️ Item '%s' removed.\n\n🛒 Remaining Items:\n%s",
		removed.Name, renderBullets(remaining))
}

func renderCleared(dropped int) string {
	return fmt.Sprintf("🧹 All items deleted. (%d items removed)\n%s", dropped, nowEmptyListMessage)
}

func renderCount(count int, items []item.Item) string {
	if count == 0 {
		return fmt.Sprintf("🔢 Count: 0 items\n%s", emptyListMessage)
	}
	return fmt.Sprintf("🔢 Count: %d items\n\n🛒 Shopping List:\n%s", count, renderBullets(items))
}

func renderHealth(serviceName string, count int) string {
	return fmt.Sprintf("✅ Status: Healthy\n🛒 Service: %s\n📊 Items Count: %d", serviceName, count)
}
