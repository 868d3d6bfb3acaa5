package cli

import (
	"context"
	"fmt"

	"github.com/LabsDAO/data-gamify-network/internal/client/credentials"
	"github.com/LabsDAO/data-gamify-network/internal/storage"
)

func maskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return "****" + s[len(s)-4:]
}

func originLabel(override bool) string {
	if override {
		return "custom"
	}
	return "default"
}

// Creds prints the active credential sets with secrets masked.
func (a *App) Creds(ctx context.Context) error {
	aws := a.awsCreds.Get(ctx)
	fmt.Fprintf(a.out, "AWS  (%s): key=%s secret=%s region=%s bucket=%s\n",
		originLabel(a.awsCreds.IsUsingOverride(ctx)),
		aws.AccessKeyID, maskSecret(aws.SecretAccessKey), aws.Region, aws.Bucket)

	oortCreds := a.oortCreds.Get(ctx)
	fmt.Fprintf(a.out, "OORT (%s): key=%s secret=%s endpoint=%s bucket=%s\n",
		originLabel(a.oortCreds.IsUsingOverride(ctx)),
		oortCreds.AccessKeyID, maskSecret(oortCreds.SecretAccessKey), oortCreds.Endpoint, oortCreds.Bucket)
	return nil
}

// SetCreds interactively collects a full credential set for one provider
// and stores it as the override. Secrets are read without echo.
func (a *App) SetCreds(ctx context.Context, args []string) error {
	provider, err := parseProvider(args, "")
	if err != nil {
		a.notifier.Error("%v", err)
		return err
	}

	accessKey, err := GetSimpleText(a.reader, "Access key ID", a.out)
	if err != nil {
		return err
	}
	secret, err := GetSecret("Secret access key", a.out)
	if err != nil {
		return err
	}

	switch provider {
	case storage.ProviderAWS:
		region, err := GetSimpleText(a.reader, "Region", a.out)
		if err != nil {
			return err
		}
		bucket, err := GetSimpleText(a.reader, "Bucket", a.out)
		if err != nil {
			return err
		}
		creds := credentials.AWSCredentials{
			AccessKeyID:     accessKey,
			SecretAccessKey: string(secret),
			Region:          region,
			Bucket:          bucket,
		}
		if err := creds.Validate(); err != nil {
			a.notifier.Error("%v", err)
			return err
		}
		if err := a.awsCreds.Save(ctx, creds); err != nil {
			a.notifier.Error("Cannot save credentials: %v", err)
			return err
		}

	case storage.ProviderOORT:
		endpoint, err := GetSimpleText(a.reader, "Endpoint", a.out)
		if err != nil {
			return err
		}
		bucket, err := GetSimpleText(a.reader, "Bucket", a.out)
		if err != nil {
			return err
		}
		creds := credentials.OORTCredentials{
			AccessKeyID:     accessKey,
			SecretAccessKey: string(secret),
			Endpoint:        endpoint,
			Bucket:          bucket,
		}
		if err := creds.Validate(); err != nil {
			a.notifier.Error("%v", err)
			return err
		}
		if err := a.oortCreds.Save(ctx, creds); err != nil {
			a.notifier.Error("Cannot save credentials: %v", err)
			return err
		}
	}

	a.notifier.Success("%s credentials saved", provider)
	return nil
}

// ResetCreds drops the override for one provider, reverting to defaults.
func (a *App) ResetCreds(ctx context.Context, args []string) error {
	provider, err := parseProvider(args, "")
	if err != nil {
		a.notifier.Error("%v", err)
		return err
	}

	switch provider {
	case storage.ProviderAWS:
		err = a.awsCreds.Reset(ctx)
	case storage.ProviderOORT:
		err = a.oortCreds.Reset(ctx)
	}
	if err != nil {
		a.notifier.Error("Cannot reset credentials: %v", err)
		return err
	}

	a.notifier.Success("%s credentials reset to defaults", provider)
	return nil
}

// Mode shows both providers' modes, or toggles one when named.
func (a *App) Mode(ctx context.Context, args []string) error {
	if len(args) == 0 {
		for _, p := range []storage.Provider{storage.ProviderAWS, storage.ProviderOORT} {
			fmt.Fprintf(a.out, "%-4s: %s\n", p, modeLabel(a.modes.UseReal(ctx, p)))
		}
		return nil
	}

	provider, err := parseProvider(args, "")
	if err != nil {
		a.notifier.Error("%v", err)
		return err
	}

	real, err := a.modes.Toggle(ctx, provider)
	if err != nil {
		a.notifier.Error("Cannot toggle mode: %v", err)
		return err
	}
	a.notifier.Info("%s mode: %s", provider, modeLabel(real))
	return nil
}

func modeLabel(real bool) string {
	if real {
		return "real"
	}
	return "simulated"
}
