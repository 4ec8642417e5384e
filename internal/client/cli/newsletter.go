package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"glowshop/internal/common"
)

// Subscribe signs an email up for the newsletter. When no email argument is
// given, the user is prompted for one. An already-subscribed email gets its
// own message; every other failure is reported generically.
func (a *App) Subscribe(ctx context.Context, email string) error {
	if email == "" && a.interactive {
		entered, err := GetSimpleText(a.reader, "Enter your email:", a.out)
		if err != nil {
			return err
		}
		email = entered
	}

	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}

	_, err := a.api.SubscribeNewsletter(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrAlreadySubscribed) {
			fmt.Fprintln(a.out, "Already subscribed: this email is already in our newsletter.")
			return nil
		}
		a.logger.Error(ctx, "newsletter signup failed", "error", err)
		fmt.Fprintln(a.out, "Subscription failed. Please try again later.")
		return err
	}

	fmt.Fprintln(a.out, "Successfully subscribed! Check your email for a 10% off coupon.")
	return nil
}
