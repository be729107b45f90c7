package swap

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"btc-yield.backend/internal/domain/entities"
)

// SwapParams describes one stable-asset to yield-asset conversion
type SwapParams struct {
	SellTokenAddress string
	BuyTokenAddress  string
	SellAmount       string
	TakerAddress     string
}

// QuoteBuilder turns a swap request into an executable call batch. The
// aggregation itself happens provider-side; this service only consumes the
// result.
type QuoteBuilder interface {
	BuildSwapCalls(ctx context.Context, params SwapParams) ([]entities.Call, error)
}

const integratorName = "tradfi-btc-yield"

// quote is the subset of the aggregator's quote response this client reads
type quote struct {
	QuoteID string `json:"quoteId"`
}

type buildRequest struct {
	QuoteID      string  `json:"quoteId"`
	TakerAddress string  `json:"takerAddress"`
	Slippage     float64 `json:"slippage"`
}

type buildResponse struct {
	Calls []entities.Call `json:"calls"`
}

// AvnuClient is a thin HTTP adapter over the AVNU swap aggregator
type AvnuClient struct {
	baseURL      string
	feeBps       int
	feeRecipient string
	httpClient   *http.Client
}

// NewAvnuClient creates a new aggregator client
func NewAvnuClient(baseURL string, feeBps int, feeRecipient string) *AvnuClient {
	return &AvnuClient{
		baseURL:      baseURL,
		feeBps:       feeBps,
		feeRecipient: feeRecipient,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

// BuildSwapCalls fetches the best quote and expands it into calls
func (c *AvnuClient) BuildSwapCalls(ctx context.Context, params SwapParams) ([]entities.Call, error) {
	feeRecipient := c.feeRecipient
	if feeRecipient == "" {
		feeRecipient = params.TakerAddress
	}

	q := url.Values{}
	q.Set("sellTokenAddress", params.SellTokenAddress)
	q.Set("buyTokenAddress", params.BuyTokenAddress)
	q.Set("sellAmount", params.SellAmount)
	q.Set("takerAddress", params.TakerAddress)
	q.Set("integratorName", integratorName)
	q.Set("integratorFees", strconv.Itoa(c.feeBps))
	q.Set("integratorFeeRecipient", feeRecipient)

	var quotes []quote
	if err := c.getJSON(ctx, "/swap/v2/quotes?"+q.Encode(), &quotes); err != nil {
		return nil, err
	}
	if len(quotes) == 0 {
		return nil, errors.New("no swap quotes returned")
	}

	var built buildResponse
	body := buildRequest{
		QuoteID:      quotes[0].QuoteID,
		TakerAddress: params.TakerAddress,
		Slippage:     0.005,
	}
	if err := c.postJSON(ctx, "/swap/v2/build", body, &built); err != nil {
		return nil, err
	}
	if len(built.Calls) == 0 {
		return nil, errors.New("quote produced no calls")
	}
	return built.Calls, nil
}

func (c *AvnuClient) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *AvnuClient) postJSON(ctx context.Context, path string, in, out interface{}) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *AvnuClient) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("aggregator returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
