package view

import "html/template"

// All markup the storefront produces, compiled once at startup.
// Fragments (menu grid, cart panel, order history) are separate templates
// so actions can re-render just the affected region.
var tmpl = template.Must(template.New("storefront").Parse(`
{{define "layout"}}<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}} — Food Delivery</title>
<link rel="stylesheet" href="/static/styles.css">
</head>
<body class="{{if eq .Theme "dark"}}dark-theme{{end}}">
<nav id="mainNav" class="navbar">
  <a class="navbar-brand" href="/">Food Delivery</a>
  <div class="nav-links">
    <a href="/menu">Menu</a>
    {{if .Session}}
      <a id="authLink" href="/profile"><span id="authLinkText">Profile</span></a>
      <form method="post" action="/auth/logout" class="inline"><button id="logoutButton" class="btn btn-link">Logout</button></form>
    {{else}}
      <a id="authLink" href="/auth"><span id="authLinkText">Sign In</span></a>
    {{end}}
    <form method="post" action="/theme" class="inline">
      <input type="hidden" name="theme" value="{{if eq .Theme "dark"}}light{{else}}dark{{end}}">
      <button id="toggleTheme" class="btn btn-link">{{if eq .Theme "dark"}}&#9728;{{else}}&#127769;{{end}}</button>
    </form>
  </div>
</nav>
<main class="container">
{{.Body}}
</main>
{{template "faq" .}}
{{template "chat" .}}
</body>
</html>{{end}}

{{define "menu_page"}}
<section id="menuSections">
{{range .Sections}}
  <h3 class="section-title">{{.Title}}</h3>
  <div class="menu-grid" id="{{.GridID}}">
  {{range .Items}}{{template "menu_item" .}}{{end}}
  </div>
{{end}}
</section>
<section id="recommended">
  <h3 class="section-title">Recommended</h3>
  <div class="toolbar">
    <form method="get" action="/menu/page" class="inline">
      <input type="hidden" name="sort" value="price"><input type="hidden" name="dir" value="asc">
      <input type="hidden" name="filter" value="{{.Page.Params.Filter}}">
      <button class="sort-button" data-sort="asc">Price &#8593;</button>
    </form>
    <form method="get" action="/menu/page" class="inline">
      <input type="hidden" name="sort" value="price"><input type="hidden" name="dir" value="desc">
      <input type="hidden" name="filter" value="{{.Page.Params.Filter}}">
      <button class="sort-button" data-sort="desc">Price &#8595;</button>
    </form>
    <form method="get" action="/menu/page" class="inline">
      <input type="hidden" name="sort" value="{{.Page.Params.Sort}}"><input type="hidden" name="dir" value="{{.Page.Params.Dir}}">
      <input type="text" name="filter" value="{{.Page.Params.Filter}}" placeholder="Search dishes">
      <button class="btn btn-secondary">Filter</button>
    </form>
  </div>
  {{template "menu_fragment" .Page}}
</section>
{{template "cart_panel" .Cart}}
{{end}}

{{define "menu_fragment"}}
<div id="recommendedGrid" class="menu-grid">
{{if .Empty}}
  <p class="empty-state">No dishes match your search.</p>
{{else}}
  {{range .Items}}{{template "menu_item" .}}{{end}}
{{end}}
</div>
<div id="recommendedPagination" class="pagination">
{{range .Buttons}}
  <form method="get" action="/menu/page" class="inline">
    <input type="hidden" name="page" value="{{.Number}}">
    <input type="hidden" name="sort" value="{{$.Params.Sort}}">
    <input type="hidden" name="dir" value="{{$.Params.Dir}}">
    <input type="hidden" name="filter" value="{{$.Params.Filter}}">
    <button class="pagination-button{{if .Active}} active{{end}}">{{.Number}}</button>
  </form>
{{end}}
</div>
{{end}}

{{define "menu_item"}}
<div class="menu-item">
  <img src="{{.PictureURL}}" alt="{{.Name}}" class="menu-item-image">
  <h4>{{.Name}}</h4>
  <p>{{.Description}}</p>
  <p>Price: ${{.Price.StringFixed 2}}</p>
  <form method="post" action="/cart/items/{{.ID}}" class="inline">
    <button class="btn btn-primary add-to-cart-btn" data-id="{{.ID}}">Add to Cart</button>
  </form>
</div>
{{end}}

{{define "cart_panel"}}
<aside id="cartPanel">
  <h3>Your Cart</h3>
  <div id="cartItems">
  {{range .Items}}
    <div class="cart-item">
      <div class="cart-item-content"><h4>{{.Name}}</h4><p>${{.Price}}</p></div>
      <form method="post" action="/cart/items/{{.ID}}/remove" class="inline">
        <button class="btn btn-secondary remove-from-cart-btn" data-id="{{.ID}}">Remove</button>
      </form>
    </div>
  {{end}}
  </div>
  <p>Total: <span id="cartTotal">${{.Total}}</span></p>
  <form method="post" action="/cart/checkout" id="checkoutForm">
    <input type="text" name="name" id="customerName" placeholder="Name" required>
    <input type="text" name="address" id="customerAddress" placeholder="Address" required>
    <input type="text" name="phone" id="customerPhone" placeholder="Phone" required>
    <button id="confirmOrderButton" class="btn btn-primary" {{if not .CanOrder}}disabled{{end}}>Confirm Order</button>
  </form>
</aside>
{{end}}

{{define "profile_page"}}
<section id="profile">
  <h3>Profile</h3>
  <p id="profileName">Name: {{.User.Name}}</p>
  <p id="profileEmail">Email: {{.User.Email}}</p>
  <p id="profilePhone">Phone: {{.User.Phone}}</p>
</section>
<section id="orderHistory">
  <h3>Order History</h3>
  {{template "order_history" .History}}
</section>
<section id="supportSection">
  <h3>Support</h3>
  <form id="supportForm" method="post" action="/support" enctype="multipart/form-data">
    <input type="email" name="email" id="supportEmail" placeholder="Your email" required>
    <textarea name="message" id="supportMessage" placeholder="How can we help?" required></textarea>
    <input type="file" name="attachments" id="supportAttachment" multiple>
    <button class="btn btn-primary">Send</button>
  </form>
  <div id="supportStatus"></div>
</section>
{{end}}

{{define "order_history"}}
<div id="orderHistoryContainer">
{{if .Empty}}
  <p>No orders found.</p>
{{else}}
  {{range .Orders}}
  <div class="order-item">
    <h4>Order #{{.ID}}</h4>
    <p><strong>Total:</strong> ${{.Total.StringFixed 2}}</p>
    <p><strong>Address:</strong> {{.Address}}</p>
    <p><strong>Items:</strong></p>
    <ul>
    {{range .FoodItems}}<li>{{.Name}} - ${{.Price.StringFixed 2}}</li>{{end}}
    </ul>
  </div>
  {{end}}
{{end}}
</div>
{{if not .Empty}}
<div class="history-pager">
  <form method="get" action="/profile/orders" class="inline">
    <input type="hidden" name="page" value="{{.PrevPage}}">
    <button id="prevPageButton" {{if not .HasPrev}}disabled{{end}}>Previous</button>
  </form>
  <span id="currentPageLabel">Page {{.Page}} of {{.TotalPages}}</span>
  <form method="get" action="/profile/orders" class="inline">
    <input type="hidden" name="page" value="{{.NextPage}}">
    <button id="nextPageButton" {{if not .HasNext}}disabled{{end}}>Next</button>
  </form>
</div>
{{end}}
{{end}}

{{define "auth_page"}}
<section id="authForms">
  <div class="auth-tabs">
    <button class="auth-tab active" data-tab="login">Sign In</button>
    <button class="auth-tab" data-tab="register">Sign Up</button>
  </div>
  <form id="loginForm" method="post" action="/auth/login">
    <input type="email" name="email" id="loginEmail" placeholder="Email" required>
    <input type="password" name="password" id="loginPassword" placeholder="Password" required>
    <button class="btn btn-primary">Sign In</button>
  </form>
  <form id="registerForm" class="hidden" method="post" action="/auth/register">
    <input type="text" name="name" id="registerName" placeholder="Name" required>
    <input type="email" name="email" id="registerEmail" placeholder="Email" required>
    <input type="text" name="phone" id="registerPhone" placeholder="Phone" required>
    <input type="password" name="password" id="registerPassword" placeholder="Password" required>
    <input type="password" name="confirm_password" id="registerConfirmPassword" placeholder="Confirm password" required>
    <button class="btn btn-primary">Sign Up</button>
  </form>
  <div id="errorMessages">{{.Error}}</div>
</section>
{{end}}

{{define "faq"}}
<section id="faq">
  <h3>FAQ</h3>
  <details class="faq-question"><summary>How long does delivery take?</summary>
    <div class="faq-answer">Most orders arrive within 45 minutes.</div></details>
  <details class="faq-question"><summary>Can I cancel an order?</summary>
    <div class="faq-answer">Call support before the kitchen confirms your order.</div></details>
  <details class="faq-question"><summary>Do you deliver on holidays?</summary>
    <div class="faq-answer">Yes, every day of the year.</div></details>
</section>
{{end}}

{{define "chat"}}
<div id="supportChat">
  <form method="post" action="/support/chat" class="inline">
    <input type="text" name="message" id="messageInput" placeholder="Message support">
    <button id="sendMessageBtn" class="btn btn-secondary">Send</button>
  </form>
</div>
{{end}}
`))
