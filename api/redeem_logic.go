package api

import (
	"io"
	"net/http"

	"github.com/krazyTry/vyper-go/d128"
	rlf "github.com/krazyTry/vyper-go/redeem_logic_farming"

	"github.com/gorilla/mux"
)

const maxRequestBody = 64 << 10

type RedeemLogic struct {
	client   *rlf.RedeemLogicFarming
	defaults *rlf.RedeemLogicConfig
}

func NewRedeemLogic(client *rlf.RedeemLogicFarming, defaults *rlf.RedeemLogicConfig) *RedeemLogic {
	return &RedeemLogic{client: client, defaults: defaults}
}

type ConfigResponse struct {
	InterestSplit d128.Decimal `json:"interest_split"`
	CapLow        d128.Decimal `json:"cap_low"`
	CapHigh       d128.Decimal `json:"cap_high"`
}

func (r *RedeemLogic) handleExecute(w http.ResponseWriter, req *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(req.Body, maxRequestBody))
	if err != nil {
		return BadRequest(err)
	}
	parsed, err := ParseExecuteRequest(body, r.defaults)
	if err != nil {
		return BadRequest(err)
	}

	var result *rlf.RedeemLogicExecuteResult
	if parsed.ConfigAddress != nil {
		result, err = r.client.Execute(req.Context(), *parsed.ConfigAddress, parsed.Input)
	} else {
		result, err = r.client.ExecuteWithConfig(parsed.Input, parsed.Config)
	}
	if err != nil {
		return err
	}
	return WriteJSON(w, result)
}

func (r *RedeemLogic) handleGetConfig(w http.ResponseWriter, _ *http.Request) error {
	return WriteJSON(w, &ConfigResponse{
		InterestSplit: r.defaults.InterestSplit,
		CapLow:        r.defaults.CapLow,
		CapHigh:       r.defaults.CapHigh,
	})
}

func (r *RedeemLogic) Mount(root *mux.Router, pathPrefix string) {
	root.Path(pathPrefix + "/execute").
		Methods(http.MethodPost).
		Name("POST " + pathPrefix + "/execute").
		HandlerFunc(WrapHandlerFunc(r.handleExecute))
	root.Path(pathPrefix + "/config").
		Methods(http.MethodGet).
		Name("GET " + pathPrefix + "/config").
		HandlerFunc(WrapHandlerFunc(r.handleGetConfig))
}
