package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/turtacn/h5sign/internal/application/dto"
	"github.com/turtacn/h5sign/internal/domain/models"
	"github.com/turtacn/h5sign/pkg/errors"
)

type loader func() (*services, error)

func newH5stCmd(load loader) *cobra.Command {
	req := &dto.H5stRequest{}
	var body string

	cmd := &cobra.Command{
		Use:   "h5st",
		Short: "Compute the h5st signature of a business request",
		Example: `  h5sign-cli h5st --version 4.7.4 --pin jd_xxx --ua "Mozilla/5.0 ..." --app-id fb5df \
    --body '{"functionId":"queryMaterialAdverts","appid":"item-v3","body":{"skuId":1}}'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := load()
			if err != nil {
				return err
			}
			obj, err := models.ParseOrderedObject(body)
			if err != nil {
				return errors.ErrInvalidRequest("--body must be a JSON object").WithCause(err)
			}
			req.Body = obj
			resp, err := svc.algo.H5st(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Version, "version", "", "h5st version")
	f.StringVar(&req.Pin, "pin", "", "account pin")
	f.StringVar(&req.UA, "ua", "", "browser user agent")
	f.StringVar(&req.AppID, "app-id", "", "appId issued to the page")
	f.StringVar(&req.H5st, "h5st", "", "previously captured h5st to reuse appId, token and env from")
	f.StringSliceVar(&req.Stk, "stk", nil, "business fields to sign")
	f.BoolVar(&req.Debug, "debug", false, "sign in debug mode")
	f.BoolVar(&req.ReuseToken, "reuse-token", false, "keep the token of --h5st in the output")
	f.StringVar(&body, "body", "", "business parameters as a JSON object")
	_ = cmd.MarkFlagRequired("body")
	return cmd
}

func newSignCmd(load loader) *cobra.Command {
	req := &dto.SignRequest{}
	var body string

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Compute the client sign parameters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := load()
			if err != nil {
				return err
			}
			req.Body = json.RawMessage(body)
			resp, err := svc.algo.Sign(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), resp)
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.FunctionID, "function-id", "", "functionId of the call")
	f.StringVar(&body, "body", "", "body as JSON text")
	f.StringVar(&req.Client, "client", "", "client name, android when empty")
	f.StringVar(&req.ClientVersion, "client-version", "", "client version, 13.6.3 when empty")
	f.StringVar(&req.UUID, "uuid", "", "device uuid, random when empty")
	_ = cmd.MarkFlagRequired("function-id")
	_ = cmd.MarkFlagRequired("body")
	return cmd
}

func newCommandCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "command <share text>",
		Short: "Build the jComExchange URL that resolves a share code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := load()
			if err != nil {
				return err
			}
			link, err := svc.command.Exchange(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), link)
			return err
		},
	}
}

func newVersionsCmd(load loader) *cobra.Command {
	return &cobra.Command{
		Use:   "versions",
		Short: "List the supported h5st versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := load()
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), svc.algo.Versions(cmd.Context()))
		},
	}
}
