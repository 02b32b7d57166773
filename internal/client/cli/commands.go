package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/dmitrijs2005/stakemarket/internal/client/models"
	"github.com/dmitrijs2005/stakemarket/internal/contentref"
	"github.com/dustin/go-humanize"
)

var errNoAccount = errors.New("no account given and not logged in")

// commands is the REPL verb table.
func (a *App) commands() []command {
	return []command{
		{name: "login", usage: "login [token]", run: a.login},
		{name: "logout", usage: "logout", auth: true, run: a.logout},
		{name: "stake", usage: "stake", run: a.stake},
		{name: "listings", aliases: []string{"ls", "list"}, usage: "listings", run: a.listings},
		{name: "mine", usage: "mine", auth: true, run: a.mine},
		{name: "show", usage: "show <listing-id>", minArgs: 1, run: a.show},
		{name: "publish", usage: "publish <file> <price> [name]", minArgs: 2, auth: true, run: a.publish},
		{name: "buy", usage: "buy <listing-id>", minArgs: 1, auth: true, run: a.buy},
		{name: "toggle", usage: "toggle <listing-id>", minArgs: 1, auth: true, run: a.toggle},
		{name: "purchases", usage: "purchases", auth: true, run: a.purchases},
		{name: "download", aliases: []string{"get"}, usage: "download <listing-id> [dir]", minArgs: 1, auth: true, run: a.download},
		{name: "balance", usage: "balance [account]", run: a.balance},
		{name: "allowance", usage: "allowance <spender> [owner]", minArgs: 1, run: a.allowance},
		{name: "approve", usage: "approve <spender> <amount>", minArgs: 2, auth: true, run: a.approve},
		{name: "transfer", usage: "transfer <to> <amount>", minArgs: 2, auth: true, run: a.transfer},
		{name: "transferfrom", usage: "transferfrom <owner> <to> <amount>", minArgs: 3, auth: true, run: a.transferFrom},
		{name: "watch", usage: "watch", run: a.watch},
		{name: "compute", usage: "compute <listing-id> <algorithm>", minArgs: 2, run: a.compute},
		{name: "health", usage: "health", run: a.health},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid listing id %q", s)
	}
	return id, nil
}

func (a *App) amount(s string) (int64, error) {
	return parseAmount(s, a.config.Decimals)
}

func (a *App) fmtAmount(v int64) string {
	return formatAmount(v, a.config.Decimals)
}

// account returns args[i] when present, otherwise the logged in identity.
func (a *App) account(args []string, i int) (string, error) {
	if len(args) > i {
		return args[i], nil
	}
	if id := a.whoami(); id != "" {
		return id, nil
	}
	return "", errNoAccount
}

func (a *App) printListing(l *models.Listing) {
	state := "inactive"
	if l.IsActive {
		state = "active"
	}
	_, name := contentref.Split(l.ContentRef)
	fmt.Fprintf(a.out, "#%d %-24s price %s  stake %s  %s  by %s\n",
		l.ID, name, a.fmtAmount(l.Price), a.fmtAmount(l.StakedAmount), state, l.Publisher)
}

func (a *App) login(ctx context.Context, args []string) error {
	var token string
	if len(args) > 0 {
		token = args[0]
	} else {
		t, err := GetToken(a.out)
		if err != nil {
			return err
		}
		token = t
	}

	id, err := a.auth.Login(ctx, token)
	if err != nil {
		return err
	}
	a.setIdentity(id)
	fmt.Fprintf(a.out, "Logged in as %s\n", id)
	return nil
}

func (a *App) logout(ctx context.Context, args []string) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.setIdentity("")
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) stake(ctx context.Context, args []string) error {
	s, err := a.api.StakeAmount(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Stake per listing: %s (escrowed by %s)\n", a.fmtAmount(s.Amount), s.EngineAccount)
	return nil
}

func (a *App) listings(ctx context.Context, args []string) error {
	ls, err := a.api.ListListings(ctx)
	if err != nil {
		return err
	}
	if len(ls) == 0 {
		fmt.Fprintln(a.out, "No listings")
	}
	for _, l := range ls {
		a.printListing(l)
	}
	return nil
}

func (a *App) mine(ctx context.Context, args []string) error {
	ls, err := a.api.ListByPublisher(ctx, a.whoami())
	if err != nil {
		return err
	}
	if len(ls) == 0 {
		fmt.Fprintln(a.out, "You have not published anything")
	}
	for _, l := range ls {
		a.printListing(l)
	}
	return nil
}

func (a *App) show(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	l, err := a.api.GetListing(ctx, id)
	if err != nil {
		return err
	}
	a.printListing(l)
	fmt.Fprintf(a.out, "  content %s\n  created %s\n", l.ContentRef, humanize.Time(l.CreatedAt))
	return nil
}

func (a *App) publish(ctx context.Context, args []string) error {
	price, err := a.amount(args[1])
	if err != nil {
		return err
	}
	name := ""
	if len(args) > 2 {
		name = args[2]
	}

	fi, err := os.Stat(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Sealing and uploading %s (%s)...\n", args[0], humanize.Bytes(uint64(fi.Size())))

	id, err := a.market.PublishFile(ctx, a.whoami(), args[0], name, price)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Published listing #%d at %s\n", id, a.fmtAmount(price))
	return nil
}

func (a *App) buy(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	p, err := a.market.Buy(ctx, a.whoami(), id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Bought listing #%d for %s (purchase %s)\n", p.ListingID, a.fmtAmount(p.Price), p.ID)
	return nil
}

func (a *App) toggle(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	active, err := a.api.ToggleStatus(ctx, id)
	if err != nil {
		return err
	}
	if active {
		fmt.Fprintf(a.out, "Listing #%d is now active\n", id)
	} else {
		fmt.Fprintf(a.out, "Listing #%d is now inactive\n", id)
	}
	return nil
}

func (a *App) purchases(ctx context.Context, args []string) error {
	list, fromCache, err := a.market.Purchases(ctx, a.whoami())
	if err != nil {
		return err
	}
	if fromCache {
		synced, err := a.market.LastSynced(ctx)
		if err == nil && !synced.IsZero() {
			fmt.Fprintf(a.out, "Server unavailable, showing purchases cached %s\n", humanize.Time(synced))
		} else {
			fmt.Fprintln(a.out, "Server unavailable, showing cached purchases")
		}
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No purchases")
	}
	for _, p := range list {
		_, name := contentref.Split(p.ContentRef)
		fmt.Fprintf(a.out, "%4d  #%d %-24s %s  %s\n", p.Seq, p.ListingID, name, a.fmtAmount(p.Price), humanize.Time(p.CreatedAt))
	}
	return nil
}

func (a *App) download(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	dir := a.config.DownloadDir
	if len(args) > 1 {
		dir = args[1]
	}

	d, err := a.market.Download(ctx, id, dir)
	if err != nil {
		return err
	}
	if d.Decrypted {
		fmt.Fprintf(a.out, "Saved %s\n", d.Path)
	} else {
		fmt.Fprintf(a.out, "Saved sealed blob %s (no local key)\n", d.Path)
	}
	return nil
}

func (a *App) balance(ctx context.Context, args []string) error {
	acct, err := a.account(args, 0)
	if err != nil {
		return err
	}
	v, err := a.api.BalanceOf(ctx, acct)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s: %s\n", acct, a.fmtAmount(v))
	return nil
}

func (a *App) allowance(ctx context.Context, args []string) error {
	owner, err := a.account(args, 1)
	if err != nil {
		return err
	}
	v, err := a.api.Allowance(ctx, owner, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s may spend %s of %s\n", args[0], a.fmtAmount(v), owner)
	return nil
}

func (a *App) approve(ctx context.Context, args []string) error {
	v, err := a.amount(args[1])
	if err != nil {
		return err
	}
	if err := a.api.Approve(ctx, args[0], v); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Approved %s to spend %s\n", args[0], a.fmtAmount(v))
	return nil
}

func (a *App) transfer(ctx context.Context, args []string) error {
	v, err := a.amount(args[1])
	if err != nil {
		return err
	}
	if err := a.api.Transfer(ctx, args[0], v); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Sent %s to %s\n", a.fmtAmount(v), args[0])
	return nil
}

func (a *App) transferFrom(ctx context.Context, args []string) error {
	v, err := a.amount(args[2])
	if err != nil {
		return err
	}
	if err := a.api.TransferFrom(ctx, args[0], args[1], v); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Moved %s from %s to %s\n", a.fmtAmount(v), args[0], args[1])
	return nil
}

// watch prints committed events until interrupted. Purchases made by the
// logged in identity are cached as they arrive.
func (a *App) watch(ctx context.Context, args []string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	fmt.Fprintln(a.out, "Watching events, Ctrl-C to stop")
	me := a.whoami()
	return a.api.WatchEvents(ctx, func(ev *models.Event) error {
		a.printEvent(ev)
		if me == "" {
			return nil
		}
		_, err := a.market.RecordEvent(ctx, me, ev)
		return err
	})
}

func (a *App) printEvent(ev *models.Event) {
	at := ev.At.Local().Format(time.TimeOnly)
	switch {
	case ev.Purchase != nil:
		fmt.Fprintf(a.out, "%s  %s bought #%d for %s\n", at, ev.Actor, ev.ListingID, a.fmtAmount(ev.Purchase.Price))
	case ev.ContentRef != "":
		_, name := contentref.Split(ev.ContentRef)
		fmt.Fprintf(a.out, "%s  %s published #%d %s\n", at, ev.Actor, ev.ListingID, name)
	default:
		state := "inactive"
		if ev.IsActive {
			state = "active"
		}
		fmt.Fprintf(a.out, "%s  #%d is now %s\n", at, ev.ListingID, state)
	}
}

func (a *App) compute(ctx context.Context, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	l, err := a.api.GetListing(ctx, id)
	if err != nil {
		return err
	}
	res, err := a.daemon.Compute(ctx, l.ContentRef, args[1])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s\n", res)
	return nil
}

func (a *App) health(ctx context.Context, args []string) error {
	if err := a.auth.Ping(ctx); err != nil {
		fmt.Fprintf(a.out, "server %s: %v\n", a.config.ServerEndpointAddr, err)
	} else {
		fmt.Fprintf(a.out, "server %s: ok\n", a.config.ServerEndpointAddr)
	}
	if err := a.daemon.Health(ctx); err != nil {
		fmt.Fprintf(a.out, "daemon %s: %v\n", a.config.DaemonURL, err)
	} else {
		fmt.Fprintf(a.out, "daemon %s: ok\n", a.config.DaemonURL)
	}
	return nil
}
