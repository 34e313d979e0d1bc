// ABOUTME: Health check command
// ABOUTME: Pings the remote service and reports reachability
package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/Davi-web/cms-dashboard/api"
)

// HealthCommand pings the remote service.
func HealthCommand(client *api.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Health(ctx); err != nil {
		return fmt.Errorf("service unreachable: %w", err)
	}
	fmt.Println("✓ Service is reachable")
	return nil
}
